package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/ngmigrate/internal/logging"
	"github.com/yaklabco/ngmigrate/pkg/fsutil"
)

// restoreSkipDirs are never searched for backups.
//
//nolint:gochecknoglobals // Fixed directory list.
var restoreSkipDirs = []string{"node_modules", "dist", ".git", ".hg", ".svn"}

var errNotConfirmed = errors.New("restore not confirmed")

type restoreFlags struct {
	yes    bool
	dryRun bool
}

func newRestoreCommand() *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore [paths...]",
		Short: "Restore files from the backups of a previous update",
		Long: `Put back the content a previous update replaced. Every file with a
` + fsutil.BackupSuffix + ` backup below the given paths (default: the current
directory) is overwritten with its backup, and the backup is removed.

Examples:
  ngmigrate restore               Restore the whole project, after confirming
  ngmigrate restore src/app --yes Restore one directory without asking
  ngmigrate restore --dry-run     List the files that would be restored`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "restore without asking for confirmation")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "list the files that would be restored")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string, flags *restoreFlags) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var files []string
	for _, root := range roots {
		found, err := fsutil.FindBackups(ctx, root, restoreSkipDirs...)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		logger.Info("no backups found")
		return nil
	}

	if flags.dryRun {
		for _, path := range files {
			fmt.Fprintln(cmd.OutOrStdout(), filepath.ToSlash(path))
		}
		return nil
	}

	if !flags.yes {
		if !isTerminal(cmd.InOrStdin()) {
			return fmt.Errorf("%w: stdin is not a terminal; pass --yes to restore %d files",
				errInvalidUsage, len(files))
		}
		ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
			fmt.Sprintf("Restore %d files from backup?", len(files)))
		if err != nil {
			return err
		}
		if !ok {
			return errNotConfirmed
		}
	}

	var restored int
	var errs []error
	for _, path := range files {
		ok, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
		if err != nil {
			logger.Warn("restore failed", logging.FieldPath, path, logging.FieldError, err)
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if ok {
			restored++
			logger.Debug("restored", logging.FieldPath, path)
		}
	}

	logger.Info("restore complete", logging.FieldRestored, restored)
	return errors.Join(errs...)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm asks a yes/no question and reads the answer from in.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", question)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
