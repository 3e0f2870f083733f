package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"ffanalyze"
	"ffanalyze/internal/applog"
	"ffanalyze/internal/metrics"
	"ffanalyze/internal/model"
	"ffanalyze/internal/tui"
	"ffanalyze/internal/web"
	"ffanalyze/internal/wire"
)

// Version is the released version string, stamped at build time via
// -ldflags "-X main.Version=...".
var Version = "dev"

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "ffanalyze",
		Repository: "ffanalyze",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\nA new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("Download it from https://github.com/ffanalyze/ffanalyze/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ffanalyze [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "ffanalyze is a real-time static analyzer for FFmpeg command-line invocations.\n")
		fmt.Fprintf(os.Stderr, "It reads a single ffmpeg command line from a file and reports\n")
		fmt.Fprintf(os.Stderr, "structural and semantic problems before you run it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ffanalyze cmd.txt              # Print a human-readable report\n")
		fmt.Fprintf(os.Stderr, "  ffanalyze --json cmd.txt       # Output analysis as JSON\n")
		fmt.Fprintf(os.Stderr, "  ffanalyze --watch cmd.txt      # Live TUI, re-analyzing on save\n")
		fmt.Fprintf(os.Stderr, "  ffanalyze --web                # Start the HTTP API on :8080\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output the raw diagnostics as JSON")
	watchFlag := pflag.BoolP("watch", "w", false, "Open the live TUI, re-analyzing the file on every save")
	webFlag := pflag.Bool("web", false, "Start the HTTP API and Prometheus /metrics on :8080")
	portFlag := pflag.String("port", "8080", "Port for --web mode")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Enable debug logging")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	applog.Setup(*verboseFlag)
	metrics.Register(nil)

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("ffanalyze version %s\n", Version)
		return
	}

	if *updateFlag {
		checkUpdate(Version)
		return
	}

	if *webFlag {
		if err := web.StartServer(*portFlag); err != nil {
			fmt.Fprintf(os.Stderr, "web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(1)
	}
	filePath := args[0]

	if *watchFlag {
		runWatchMode(filePath)
		return
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", filePath, err)
		os.Exit(1)
	}

	result := ffanalyze.Analyze(string(content), &filePath, 1, 0)

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(wire.FromDiagnostics(result))
		return
	}

	printReport(filePath, result)
}

func printReport(filePath string, result model.Diagnostics) {
	if len(result.Messages) == 0 {
		fmt.Printf("%s: no issues found\n", filePath)
		return
	}
	for _, d := range result.Messages {
		target, _ := d.Target()
		fmt.Printf("%s:%d:%d: %s %s: %s\n",
			filePath, target.StartLine, target.StartColumn, d.Severity, d.Code, d.Message)
	}
}

func runWatchMode(filePath string) {
	m := tui.InitialModel(filePath, true)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
