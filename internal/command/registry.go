package command

import "sort"

var registry = map[string]*Command{}

// Register adds a command definition. Command packages call this from
// init; main pulls them in with blank imports.
func Register(cmd *Command) {
	registry[cmd.Name] = cmd
}

// Get looks up a command by name.
func Get(name string) (*Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns every registered command, sorted by name.
func All() []*Command {
	list := make([]*Command, 0, len(registry))
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
