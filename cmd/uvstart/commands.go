package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) addCmd() *cobra.Command {
	var dev bool
	var backendFlag string

	cmd := &cobra.Command{
		Use:   "add <package>",
		Short: "Add a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.backendName(backendFlag)
			res := a.engine.Add(args[0], dev, name)
			return a.finish("add", name, args, res)
		},
	}
	cmd.Flags().BoolVar(&dev, "dev", false, "add as a development dependency")
	cmd.Flags().StringVar(&backendFlag, "backend", "", "backend to use instead of detection")
	return cmd
}

func (a *app) removeCmd() *cobra.Command {
	var backendFlag string

	cmd := &cobra.Command{
		Use:   "remove <package>",
		Short: "Remove a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.backendName(backendFlag)
			res := a.engine.Remove(args[0], name)
			return a.finish("remove", name, args, res)
		},
	}
	cmd.Flags().StringVar(&backendFlag, "backend", "", "backend to use instead of detection")
	return cmd
}

func (a *app) syncCmd() *cobra.Command {
	var dev bool
	var backendFlag string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Install the project's declared dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.backendName(backendFlag)
			res := a.engine.Sync(dev, name)
			return a.finish("sync", name, nil, res)
		},
	}
	cmd.Flags().BoolVar(&dev, "dev", false, "include development dependencies")
	cmd.Flags().StringVar(&backendFlag, "backend", "", "backend to use instead of detection")
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	var backendFlag string

	cmd := &cobra.Command{
		Use:   "run <command...>",
		Short: "Run a command through the backend",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.backendName(backendFlag)
			res := a.engine.Run(args, name)
			return a.finish("run", name, args, res)
		},
	}
	// everything after the first positional belongs to the child
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&backendFlag, "backend", "", "backend to use instead of detection")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var backendFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.backendName(backendFlag)
			res := a.engine.ListPackages(name)
			return a.finish("list", name, nil, res)
		},
	}
	cmd.Flags().StringVar(&backendFlag, "backend", "", "backend to use instead of detection")
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	var backendFlag string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the backend tool's version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.backendName(backendFlag)
			res := a.engine.Version(name)
			return a.finish("version", name, nil, res)
		},
	}
	cmd.Flags().StringVar(&backendFlag, "backend", "", "backend to use instead of detection")
	return cmd
}

func (a *app) cleanCmd() *cobra.Command {
	var backendFlag string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the backend's generated files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.backendName(backendFlag)
			res := a.engine.Clean(name)
			return a.finish("clean", name, nil, res)
		},
	}
	cmd.Flags().StringVar(&backendFlag, "backend", "", "backend to use instead of detection")
	return cmd
}

func (a *app) detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Detect the backend for the project directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.engine.Detect()
			if name == "" {
				fmt.Fprintln(a.stdout, "none")
				return &exitError{code: 1}
			}
			fmt.Fprintln(a.stdout, name)
			return nil
		},
	}
}

func (a *app) backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List available backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.engine.Backends() {
				fmt.Fprintln(a.stdout, name)
			}
			return nil
		},
	}
}

func (a *app) installCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <backend>",
		Short: "Show the install command for a backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint := a.engine.InstallHint(args[0])
			if hint == "" {
				return errors.Errorf("unknown backend: %s", args[0])
			}
			fmt.Fprintln(a.stdout, hint)
			return nil
		},
	}
}

func (a *app) cleanFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-files <backend>",
		Short: "Show the files clean would remove for a backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.registry.Get(args[0]); !ok {
				return errors.Errorf("unknown backend: %s", args[0])
			}
			for _, file := range a.engine.CleanFiles(args[0]) {
				fmt.Fprintln(a.stdout, file)
			}
			return nil
		},
	}
}
