package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flanksource/wardclerk"
	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/shutdown"
)

const maxPathWidth = 60

type styleSet struct {
	success lipgloss.Style
	muted   lipgloss.Style
	page    lipgloss.Style
}

func newStyles(w io.Writer) styleSet {
	renderer := lipgloss.NewRenderer(w)
	return styleSet{
		success: renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		muted:   renderer.NewStyle().Faint(true),
		page:    renderer.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	}
}

func newRenderCommand(flags *wardclerk.AllFlags) *cobra.Command {
	var output string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "render <kind> <record-file|->",
		Short: "Render a meeting record into a PDF document",
		Long: `Render reads one JSON or YAML record and writes the composed PDF.

Kinds: sacramental, council, agenda, roster (or their full names, see 'wardclerk kinds').
The document is written to --output, or to --output-dir under its suggested
name (<kind>-<date>.pdf). Use "-o -" to write to stdout.`,
		Example: `  wardclerk render sacramental program.yaml
  wardclerk render council minutes.json -o minutes.pdf
  cat roster.yaml | wardclerk render roster - --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := api.ParseKind(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", wardclerk.ErrUnknownKind, args[0])
			}
			input, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			opts := flags.Config.Options(cmd.Context())

			if dryRun {
				result, rec, err := wardclerk.DryRun(kind, input, opts)
				if err != nil {
					return err
				}
				printDryRun(cmd.OutOrStdout(), newStyles(cmd.OutOrStdout()), result, rec)
				return nil
			}

			result, err := wardclerk.Render(kind, input, opts)
			if err != nil {
				return err
			}
			target, err := writeOutput(result, output, flags.Config.OutputDir)
			if err != nil {
				return err
			}
			styles := newStyles(cmd.ErrOrStderr())
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s\n",
				styles.success.Render("✓"),
				lo.Ellipsis(target, maxPathWidth),
				styles.muted.Render(fmt.Sprintf("(%d pages, %s)", result.Pages, result.ID)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, a directory, or - for stdout")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compose without writing a PDF and print the text of every page")
	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	return data, nil
}

// writeOutput writes the PDF and returns where it went.
func writeOutput(result *wardclerk.Result, output, outputDir string) (string, error) {
	if output == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return "", fmt.Errorf("refusing to write a PDF to a terminal, redirect stdout or use --output")
		}
		if _, err := os.Stdout.Write(result.Bytes); err != nil {
			return "", fmt.Errorf("failed to write stdout: %w", err)
		}
		return "stdout", nil
	}

	target := output
	if target == "" {
		target = outputDir
	}
	if target == "" {
		target = "."
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, result.Filename)
	} else if output == "" {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", target, err)
		}
		target = filepath.Join(target, result.Filename)
	}
	if err := writeFile(target, result.Bytes); err != nil {
		return "", err
	}
	return target, nil
}

// writeFile writes through a temporary sibling so an interrupted run never
// leaves a truncated PDF behind.
func writeFile(target string, data []byte) error {
	partial := target + ".part"
	remove := shutdown.AddHookWithPriority("remove "+partial, shutdown.PriorityOutput, func() {
		_ = os.Remove(partial)
	})
	defer remove()

	if err := os.WriteFile(partial, data, 0o644); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := os.Rename(partial, target); err != nil {
		_ = os.Remove(partial)
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

func printDryRun(w io.Writer, styles styleSet, result *wardclerk.Result, rec *pdf.Recorder) {
	fmt.Fprintf(w, "%s: %s, %d pages\n", result.Filename, result.Title, result.Pages)
	for page := 1; page <= rec.PageCount(); page++ {
		fmt.Fprintln(w, styles.page.Render(fmt.Sprintf("--- page %d ---", page)))
		for _, text := range rec.Texts(page) {
			fmt.Fprintln(w, text)
		}
	}
}
