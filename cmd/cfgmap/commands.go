package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xalexb/cfgmap"
	"github.com/spf13/cobra"
)

var (
	errCheckFailed   = errors.New("check failed")
	errNotCollection = errors.New("value is neither a map nor a list")
)

func (c *cli) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE [PATH]",
		Short: "Print the value at a path",
		Long: `Print the value at PATH as YAML. Without PATH the whole document is printed.

Examples:
  cfgmap get config.yaml
  cfgmap get config.yaml servers/0/host`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load(args[0])
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 2 {
				path = args[1]
			}

			v := cfg.Get(path)
			if v == nil {
				return fmt.Errorf("%w: %q", errPathNotFound, path)
			}

			return render(cmd.OutOrStdout(), v)
		},
	}
}

func (c *cli) newOptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "option FILE SECTION OPTION",
		Short: "Print an option, falling back to the default section",
		Long: `Print SECTION/OPTION as YAML. When the section does not define the option, the
value is taken from the default section (--default-key), or from the document root
when no default key is set.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load(args[0])
			if err != nil {
				return err
			}

			v := cfg.GetOption(args[1], args[2])
			if v == nil {
				return fmt.Errorf("%w: %q in section %q", errOptionNotFound, args[2], args[1])
			}

			return render(cmd.OutOrStdout(), v)
		},
	}
}

func (c *cli) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE PATH KIND...",
		Short: "Check that the value at a path has one of the given kinds",
		Long: `Succeed when the value at PATH has one of the given kinds.

Kinds: int, float, bool, str, list, map, datetime, null, absent, present.
"list:KIND" and "map:KIND" also require every element to have KIND.

Examples:
  cfgmap check config.yaml server/port int
  cfgmap check config.yaml servers list:map
  cfgmap check config.yaml server/tls map absent`,
		Args: cobra.MinimumNArgs(3), //nolint:mnd // file, path and at least one kind
		RunE: func(cmd *cobra.Command, args []string) error {
			cond, err := parseConditions(args[2:])
			if err != nil {
				return err
			}

			cfg, err := c.load(args[0])
			if err != nil {
				return err
			}

			if !cfg.Get(args[1]).CheckThat(cond) {
				return fmt.Errorf("%w: %q is not %s", errCheckFailed, args[1], cond)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[1], cond)

			return err //nolint:wrapcheck // writer errors are reported as is
		},
	}
}

func (c *cli) newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys FILE [PATH]",
		Short: "List the keys of a map or the indexes of a list",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load(args[0])
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 2 {
				path = args[1]
			}

			v := cfg.Get(path)
			if v == nil {
				return fmt.Errorf("%w: %q", errPathNotFound, path)
			}

			keys, err := collectionKeys(v)
			if err != nil {
				return fmt.Errorf("%q: %w", path, err)
			}

			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}

			return nil
		},
	}
}

func collectionKeys(v *cfgmap.Value) ([]string, error) {
	if m, ok := v.AsMap(); ok {
		return m.Keys(), nil
	}

	if items, ok := v.AsList(); ok {
		keys := make([]string, len(items))
		for i := range items {
			keys[i] = strconv.Itoa(i)
		}

		return keys, nil
	}

	return nil, fmt.Errorf("%w: %s", errNotCollection, v.Kind())
}

// parseConditions combines kind names into a single Or condition.
func parseConditions(names []string) (cfgmap.Condition, error) {
	conds := make([]cfgmap.Condition, 0, len(names))

	for _, name := range names {
		cond, err := parseCondition(name)
		if err != nil {
			return cfgmap.Condition{}, err
		}

		conds = append(conds, cond)
	}

	if len(conds) == 1 {
		return conds[0], nil
	}

	return cfgmap.Or(conds...), nil
}

func parseCondition(name string) (cfgmap.Condition, error) {
	switch strings.ToLower(name) {
	case "absent":
		return cfgmap.IsAbsent, nil
	case "present":
		return cfgmap.IsPresent, nil
	}

	outer, inner, nested := strings.Cut(name, ":")
	if !nested {
		kind, err := cfgmap.ParseKind(name)
		if err != nil {
			return cfgmap.Condition{}, err //nolint:wrapcheck // already names the kind
		}

		return kind.Condition(), nil
	}

	elem, err := parseCondition(inner)
	if err != nil {
		return cfgmap.Condition{}, err
	}

	switch strings.ToLower(outer) {
	case "list":
		return cfgmap.IsListWith(elem), nil
	case "map":
		return cfgmap.IsMapWith(elem), nil
	default:
		return cfgmap.Condition{}, fmt.Errorf("%w: %q takes no element kind", cfgmap.ErrUnknownKind, outer)
	}
}
