// Package domain contains the core types of imxbuild.
package domain

// Command identifies one of the fixed actions the dispatcher can perform.
type Command string

// Commands accepted on the command line. CommandBuild is selected when no
// argument is given.
const (
	CommandBuild           Command = "build"
	CommandClean           Command = "clean"
	CommandDistclean       Command = "distclean"
	CommandRebuild         Command = "rebuild"
	CommandMenuconfig      Command = "menuconfig"
	CommandSavedefconfig   Command = "savedefconfig"
	CommandLinuxMenuconfig Command = "linux-menuconfig"
	CommandLinuxRebuild    Command = "linux-rebuild"
	CommandUbootRebuild    Command = "uboot-rebuild"
	CommandHelp            Command = "help"
)

// Commands returns the dispatchable commands in the order they are documented.
func Commands() []Command {
	return []Command{
		CommandBuild,
		CommandClean,
		CommandDistclean,
		CommandRebuild,
		CommandMenuconfig,
		CommandSavedefconfig,
		CommandLinuxMenuconfig,
		CommandLinuxRebuild,
		CommandUbootRebuild,
		CommandHelp,
	}
}

// String returns the command name as typed on the command line.
func (c Command) String() string {
	return string(c)
}

// Target returns the make target the command forwards to.
// Commands that run the default target, or none at all, return "".
func (c Command) Target() string {
	switch c {
	case CommandClean, CommandDistclean, CommandMenuconfig, CommandSavedefconfig,
		CommandLinuxMenuconfig, CommandLinuxRebuild, CommandUbootRebuild:
		return string(c)
	default:
		return ""
	}
}

// Interactive reports whether the command hands the terminal to make.
func (c Command) Interactive() bool {
	return c == CommandMenuconfig || c == CommandLinuxMenuconfig
}
