// Package main provides the CLI entrypoint for adaptype.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adaptype/adaptype/internal/config"
	"github.com/adaptype/adaptype/internal/model"
	"github.com/adaptype/adaptype/internal/session"
	"github.com/adaptype/adaptype/internal/tui"
	"github.com/adaptype/adaptype/internal/wordlist"
)

const defaultList = "Home Row - 10 keys"

var (
	practiceList   string
	practiceDir    string
	practicePretty bool

	lessonsFrom  string
	lessonsOut   string
	lessonsForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adaptype",
		Short:         "Adaptive TUI typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceList, "list", defaultList, "word list to practice")
	rootCmd.Flags().StringVar(&practiceDir, "wordlist-dir", config.DefaultWordListDir(), "directory with user word lists")
	rootCmd.Flags().BoolVar(&practicePretty, "pretty", true, "pretty-print the final report")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newListsCmd())
	rootCmd.AddCommand(newLessonsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "list", &practiceList, fileCfg.Practice.List)
	applyStringConfig(cmd, "wordlist-dir", &practiceDir, fileCfg.Practice.WordListDir)
	applyBoolConfig(cmd, "pretty", &practicePretty, fileCfg.Practice.ReportPretty)

	cfg := model.Config{
		List:         practiceList,
		WordListDir:  practiceDir,
		ReportPretty: practicePretty,
	}

	lists, err := wordlist.LoadLists(cfg.WordListDir)
	if err != nil {
		return err
	}
	listIndex, err := findList(lists, cfg.List)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	sess := session.New(lists, listIndex, rnd)
	program := tea.NewProgram(tui.NewModel(sess), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), sess.ReportJSON(cfg.ReportPretty)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func findList(lists []model.WordList, name string) (int, error) {
	for i, list := range lists {
		if list.Name == name {
			return i, nil
		}
	}
	names := make([]string, 0, len(lists))
	for _, list := range lists {
		names = append(names, list.Name)
	}
	return 0, fmt.Errorf("unknown word list %q (available: %s)", name, strings.Join(names, ", "))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List available word lists",
		Args:  cobra.NoArgs,
		RunE:  runListsCmd,
	}
}

func runListsCmd(cmd *cobra.Command, _ []string) error {
	lists, err := wordlist.LoadLists(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, list := range lists {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%d words)\n", list.Name, len(list.Words)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newLessonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lessons",
		Short: "Generate leveled lesson files from a word list",
		Args:  cobra.NoArgs,
		RunE:  runLessonsCmd,
	}
	cmd.Flags().StringVar(&lessonsFrom, "from", "", "source word list file (default: embedded Full Alphabet)")
	cmd.Flags().StringVar(&lessonsOut, "out", config.DefaultWordListDir(), "output directory")
	cmd.Flags().BoolVar(&lessonsForce, "force", false, "overwrite existing files")
	return cmd
}

func runLessonsCmd(_ *cobra.Command, _ []string) error {
	words, err := lessonSourceWords(lessonsFrom)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(lessonsOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for level := 1; level <= wordlist.LevelCount(); level++ {
		outPath := filepath.Join(lessonsOut, fmt.Sprintf("lesson-level%d.txt", level))
		if !lessonsForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("lesson already exists: %s (use --force to overwrite)", outPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat lesson: %w", err)
			}
		}
		filter := wordlist.FilterForLevel(level)
		filtered := make([]string, 0, len(words))
		for _, word := range words {
			if filter(word) {
				filtered = append(filtered, word)
			}
		}
		if len(filtered) == 0 {
			logErrf("Skipping level %d (no words match its key set)\n", level)
			continue
		}
		if err := writeWordList(outPath, filtered); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		logErrf("Wrote %s (%d words)\n", outPath, len(filtered))
	}
	return nil
}

func lessonSourceWords(path string) ([]string, error) {
	if path != "" {
		words, err := wordlist.LoadWords(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load source words: %w", err)
		}
		return words, nil
	}
	lessons, err := wordlist.EmbeddedLessons()
	if err != nil {
		return nil, err
	}
	return lessons[len(lessons)-1].Words, nil
}

func writeWordList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordlist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# adaptype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# list = %q          # Word list to practice
# wordlist-dir = %q  # Directory with user word lists
# report-pretty = true       # Pretty-print the final report on quit
`,
		defaultList,
		config.DefaultWordListDir(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
