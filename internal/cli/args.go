package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PrepareArgs moves bare negative numbers behind a "--" separator so that
// "morning -10" and "day -1" reach the command as offsets instead of being
// parsed as shorthand flags. A number that is the value of a preceding
// flag, as in "--offset -10", stays where it is.
func PrepareArgs(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}

	var (
		out     = make([]string, 0, len(args)+1)
		numbers []string
		rest    []string
	)
	for i, arg := range args {
		if arg == "--" {
			rest = args[i+1:]
			break
		}
		if isNegativeNumber(arg) && (i == 0 || !takesValue(cmd, args[i-1])) {
			numbers = append(numbers, arg)
			continue
		}
		out = append(out, arg)
	}
	if len(numbers) == 0 {
		return args
	}

	out = append(out, "--")
	out = append(out, numbers...)
	return append(out, rest...)
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	_, err := strconv.Atoi(arg)
	return err == nil
}

// takesValue reports whether arg is a flag of cmd that consumes the next
// argument as its value.
func takesValue(cmd *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		flag = lookupFlag(cmd, name)
	} else if len(arg) == 2 {
		flag = cmd.Flags().ShorthandLookup(arg[1:])
		if flag == nil {
			flag = cmd.InheritedFlags().ShorthandLookup(arg[1:])
		}
	}
	return flag != nil && flag.NoOptDefVal == ""
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}
