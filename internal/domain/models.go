package domain

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownGroup is returned by strict lookups for a group that is not in the catalog.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrUnknownCommand is returned by strict lookups for a command that is not in its group.
	ErrUnknownCommand = errors.New("unknown command")
)

// Group represents a named collection of commands
type Group struct {
	Name     string
	commands map[string]string // command name -> shell command
	names    []string          // sorted command names
}

// Entry is one (group, command) row of a visible list
type Entry struct {
	Group   string
	Command string
}

// Catalog is the read-only set of groups loaded from configuration.
// Group and command names are iterated in sorted order so every
// traversal within a process sees the same sequence.
type Catalog struct {
	groups map[string]*Group
	names  []string
}

// NewCatalog builds a catalog from group name -> (command name -> command string).
// The input maps are copied.
func NewCatalog(groups map[string]map[string]string) *Catalog {
	c := &Catalog{
		groups: make(map[string]*Group, len(groups)),
		names:  make([]string, 0, len(groups)),
	}
	for name, commands := range groups {
		g := &Group{
			Name:     name,
			commands: make(map[string]string, len(commands)),
			names:    make([]string, 0, len(commands)),
		}
		for cmdName, cmd := range commands {
			g.commands[cmdName] = cmd
			g.names = append(g.names, cmdName)
		}
		sort.Strings(g.names)
		c.groups[name] = g
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// GroupNames returns the group names in catalog order
func (c *Catalog) GroupNames() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Group returns the named group
func (c *Catalog) Group(name string) (*Group, bool) {
	if c == nil {
		return nil, false
	}
	g, ok := c.groups[name]
	return g, ok
}

// Len returns the number of groups
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// CommandCount returns the number of commands across all groups
func (c *Catalog) CommandCount() int {
	total := 0
	if c == nil {
		return total
	}
	for _, g := range c.groups {
		total += len(g.names)
	}
	return total
}

// Entries returns every (group, command) pair in catalog order
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	entries := make([]Entry, 0, c.CommandCount())
	for _, name := range c.names {
		for _, cmdName := range c.groups[name].names {
			entries = append(entries, Entry{Group: name, Command: cmdName})
		}
	}
	return entries
}

// Lookup returns the command string for a group/command pair without
// erroring on a miss.
func (c *Catalog) Lookup(group, command string) (string, bool) {
	g, ok := c.Group(group)
	if !ok {
		return "", false
	}
	return g.Command(command)
}

// LookupStrict is the strict variant of Lookup used outside the UI.
func (c *Catalog) LookupStrict(group, command string) (string, error) {
	g, ok := c.Group(group)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	cmd, ok := g.Command(command)
	if !ok {
		return "", fmt.Errorf("%w: %q in group %q", ErrUnknownCommand, command, group)
	}
	return cmd, nil
}

// CommandNames returns the command names in catalog order
func (g *Group) CommandNames() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.names...)
}

// Command returns the shell command registered under name
func (g *Group) Command(name string) (string, bool) {
	if g == nil {
		return "", false
	}
	cmd, ok := g.commands[name]
	return cmd, ok
}

// Len returns the number of commands in the group
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.names)
}
