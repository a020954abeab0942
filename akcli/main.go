package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/npillmayer/akshara/detect"
	"github.com/npillmayer/akshara/kgp"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/pterm/pterm"
	"golang.org/x/text/transform"
)

// tracer traces with key 'akshara.akcli'
func tracer() tracing.Trace {
	return tracing.Select("akshara.akcli")
}

func main() {
	initDisplay()
	_ = godotenv.Load()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.akshara":          "Info",
		"trace.akshara.kgp":      "Info",
		"trace.akshara.phonetic": "Info",
		"trace.akshara.detect":   "Info",
		"trace.akshara.akcli":    "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	fs := ff.NewFlagSet("akcli")
	tlevel := fs.StringLong("trace", "Info", "Trace level [Debug|Info|Error]")
	mode := fs.StringEnumLong("mode", "Conversion mode", "auto", "to-unicode", "from-unicode", "translit")
	inFile := fs.StringLong("in", "", "Convert a file instead of starting the REPL")
	outFile := fs.StringLong("out", "", "Output file for --in, default is stdout")
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("AKCLI")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		os.Exit(2)
	}
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(3)
	}
	tracer().Infof("Trace level is %s", *tlevel)

	if *inFile != "" {
		if err := convertFile(*inFile, *outFile, *mode); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
		return
	}

	pterm.Info.Println("Welcome to the Akshara CLI") // colored welcome message
	pterm.Info.Println("Quit with <ctrl>D")          // inform user how to stop the CLI
	intp, err := newIntp(*mode)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " ಅ  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// convertFile converts a whole file. With a fixed direction the file is
// streamed through the glyph transformer; in auto mode it is read
// whole, sniffed, converted and measured.
func convertFile(inName, outName, mode string) error {
	switch mode {
	case "to-unicode", "from-unicode":
		in, err := os.Open(inName)
		if err != nil {
			return err
		}
		defer in.Close()
		out, closeOut, err := openOutput(outName)
		if err != nil {
			return err
		}
		defer closeOut()
		var t transform.Transformer = kgp.Encoding.NewDecoder()
		if mode == "from-unicode" {
			t = kgp.Encoding.NewEncoder()
		}
		n, err := io.Copy(out, transform.NewReader(in, t))
		if err != nil {
			return err
		}
		tracer().Infof("converted %s, wrote %d bytes", inName, n)
		return nil
	case "auto":
		data, err := os.ReadFile(inName)
		if err != nil {
			return err
		}
		text := string(data)
		var conv string
		if detect.LooksEncoded(text, nil) {
			tracer().Infof("%s looks legacy-encoded", inName)
			conv, err = kgp.ToUnicode(text)
		} else {
			tracer().Infof("%s looks like Unicode text", inName)
			conv, err = kgp.FromUnicode(text)
		}
		if err != nil {
			return err
		}
		pterm.Info.Println(detect.Measure(text, conv).String())
		out, closeOut, err := openOutput(outName)
		if err != nil {
			return err
		}
		defer closeOut()
		_, err = io.WriteString(out, conv)
		return err
	}
	return fmt.Errorf("mode %q cannot convert files", mode)
}

func openOutput(outName string) (io.Writer, func(), error) {
	if outName == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outName)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
