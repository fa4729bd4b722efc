package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/platekbd/core"
	"github.com/jask/platekbd/input"
	"github.com/jask/platekbd/internal/config"
	"github.com/jask/platekbd/internal/logging"
	"github.com/jask/platekbd/internal/tui"
	"github.com/jask/platekbd/keyboard"
	"github.com/jask/platekbd/plate"
	"github.com/jask/platekbd/widgets"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return cmdKeyboard(args, stdout, stderr)
	}
	switch args[0] {
	case "check":
		return cmdCheck(args[1:], stdout, stderr)
	case "layout":
		return cmdLayout(args[1:], stdout, stderr)
	case "types":
		return cmdTypes(stdout)
	case "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `platekbd - license plate keyboard

USAGE:
    platekbd [-type T] [-text PLATE]     Open the keyboard; prints the plate on confirm
    platekbd check -type T PLATE...      Validate complete plates
    platekbd layout -type T -index N     Print rows and enabled keys as TOML
    platekbd types                       List plate types
    platekbd help                        Show this help message

CONFIG:
    $PLATEKBD_CONFIG or ~/.config/platekbd/config.toml; PLATEKBD_* env vars override.`)
}

func parseTypeFlag(fs *flag.FlagSet, def string) *string {
	return fs.String("type", def, "plate type name or code (see 'platekbd types')")
}

func cmdKeyboard(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("platekbd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeName := parseTypeFlag(fs, cfg.PlateType().String())
	text := fs.String("text", "", "initial plate text")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	t, err := plate.ParseType(*typeName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintf(stderr, "Error opening log: %v\n", err)
		return 1
	}
	defer logger.Close()

	session := input.New(t,
		input.WithLogger(logger.Logger),
		input.WithConfirmRequiresFull(cfg.Keyboard.ConfirmRequiresFull),
		input.WithText(*text),
	)
	app := tui.New(tui.Options{
		Session:  session,
		Bindings: core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys),
		Keyboard: &cfg.Keyboard,
		Save: func(t plate.Type) (string, error) {
			cfg.Keyboard.PlateType = t.String()
			path, err := config.Path()
			if err != nil {
				return "", err
			}
			return path, config.Save(cfg)
		},
		Logger: logger.Logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	plateText, ok := app.Result()
	if !ok {
		logger.Info("keyboard closed without confirm", "session", session.ID())
		return 1
	}
	fmt.Fprintln(stdout, plateText)
	return 0
}

func cmdCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeName := parseTypeFlag(fs, plate.Civil.String())
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Usage: platekbd check -type T PLATE...")
		return 2
	}
	t, err := plate.ParseType(*typeName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	status := 0
	for _, text := range fs.Args() {
		if err := input.Check(t, text); err != nil {
			fmt.Fprintf(stdout, "FAIL %s: %v\n", text, err)
			status = 1
			continue
		}
		fmt.Fprintf(stdout, "ok   %s\n", input.Normalize(text))
	}
	return status
}

type layoutDoc struct {
	Type     string   `toml:"type"`
	Index    int      `toml:"index"`
	ShowMore bool     `toml:"show_more"`
	Rows     []rowDoc `toml:"row"`
}

type rowDoc struct {
	Keys []keyDoc `toml:"key"`
}

type keyDoc struct {
	Key     string `toml:"key"`
	Label   string `toml:"label"`
	Control bool   `toml:"control"`
	Enabled bool   `toml:"enabled"`
}

func cmdLayout(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeName := parseTypeFlag(fs, plate.Civil.String())
	index := fs.Int("index", 0, "position of the next character")
	more := fs.Bool("more", false, "show the extended layout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	t, err := plate.ParseType(*typeName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	doc, err := describeLayout(t, *index, *more)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, keyboard.ErrInvalidIndex) {
			return 2
		}
		return 1
	}
	if err := toml.NewEncoder(stdout).Encode(doc); err != nil {
		fmt.Fprintf(stderr, "Error encoding layout: %v\n", err)
		return 1
	}
	return 0
}

func describeLayout(t plate.Type, index int, more bool) (layoutDoc, error) {
	layout, err := keyboard.SelectLayout(index, more, t)
	if err != nil {
		return layoutDoc{}, err
	}
	policy, err := keyboard.NewPlateNumber(t, index)
	if err != nil {
		return layoutDoc{}, err
	}
	doc := layoutDoc{Type: t.String(), Index: index, ShowMore: more}
	for _, row := range layout {
		rd := rowDoc{Keys: make([]keyDoc, 0, len(row))}
		for _, k := range row {
			rd.Keys = append(rd.Keys, keyDoc{
				Key:     k.String(),
				Label:   widgets.Label(k),
				Control: k.IsControl(),
				Enabled: policy.Enabled(k),
			})
		}
		doc.Rows = append(doc.Rows, rd)
	}
	return doc, nil
}

func cmdTypes(stdout io.Writer) int {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "-"
	}
	rows := make([][]string, 0, len(plate.Types()))
	for _, t := range plate.Types() {
		rows = append(rows, []string{
			t.String(),
			t.Code(),
			strconv.Itoa(t.MaxLength()),
			yesNo(t.ProvincePrefixed()),
			yesNo(t.Separator()),
		})
	}
	tbl := widgets.Table{
		Headers: []string{"NAME", "CODE", "LENGTH", "PROVINCE", "SEPARATOR"},
		Rows:    rows,
		Plain:   true,
	}
	fmt.Fprintln(stdout, tbl.Render(120, len(rows)+1))
	return 0
}
