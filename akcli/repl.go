package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/akshara"
	"github.com/npillmayer/akshara/detect"
	"github.com/npillmayer/akshara/kgp"
	"github.com/npillmayer/akshara/phonetic"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object.
type Intp struct {
	repl     *readline.Instance
	conv     *kgp.Converter
	translit *phonetic.Transliterator
	ctx      *detect.Context
	mode     string // auto | to-unicode | from-unicode | translit
	lastIn   string // most recent conversion input, for stats
	lastOut  string // most recent conversion output
}

func newIntp(mode string) (*Intp, error) {
	repl, err := readline.New("ak > ")
	if err != nil {
		return nil, err
	}
	intp := &Intp{
		repl:     repl,
		conv:     kgp.NewConverter(),
		translit: phonetic.New(phonetic.Options{}),
		ctx:      detect.ContextFromEnvironment(),
		mode:     mode,
	}
	if intp.ctx.Script != detect.KannadaContext.Script {
		tracer().Infof("environment locale %s is not Kannada, detection uses defaults", intp.ctx.Locale)
		intp.ctx = detect.KannadaContext
	}
	intp.setPrompt()
	return intp, nil
}

func (intp *Intp) setPrompt() {
	intp.repl.SetPrompt(fmt.Sprintf("ak [%s] > ", intp.mode))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var commandFn = map[string]func(*Intp, string) (error, bool){
	"to":     toOp,
	"from":   fromOp,
	"tr":     translitOp,
	"detect": detectOp,
	"stats":  statsOp,
	"learn":  learnOp,
	"forget": forgetOp,
	"mode":   modeOp,
	"help":   helpOp,
	"quit":   quitOp,
}

// execute splits a line into command verb and argument. Lines without a
// known verb are converted according to the current mode.
func (intp *Intp) execute(line string) (error, bool) {
	verb, arg := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		verb, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	if f, ok := commandFn[strings.ToLower(verb)]; ok {
		return f(intp, arg)
	}
	return convertOp(intp, line)
}

// convertOp converts the line according to the interpreter mode. In
// auto mode the direction is sniffed per line.
func convertOp(intp *Intp, text string) (error, bool) {
	var out string
	var err error
	switch intp.mode {
	case "to-unicode":
		out, err = intp.conv.ToUnicode(text)
	case "from-unicode":
		out, err = intp.conv.FromUnicode(text)
	case "translit":
		out = intp.translit.Transliterate(text)
	default: // auto
		if detect.LooksEncoded(text, intp.ctx) {
			out, err = intp.conv.ToUnicode(text)
		} else if strings.ContainsFunc(text, akshara.IsKannada) {
			out, err = intp.conv.FromUnicode(text)
		} else {
			out = intp.translit.Transliterate(text)
		}
	}
	if err != nil {
		return err, false
	}
	intp.lastIn, intp.lastOut = text, out
	pterm.Println(out)
	return nil, false
}

func toOp(intp *Intp, arg string) (error, bool) {
	out, err := intp.conv.ToUnicode(arg)
	if err != nil {
		return err, false
	}
	intp.lastIn, intp.lastOut = arg, out
	pterm.Println(out)
	return nil, false
}

func fromOp(intp *Intp, arg string) (error, bool) {
	out, err := intp.conv.FromUnicode(arg)
	if err != nil {
		return err, false
	}
	intp.lastIn, intp.lastOut = arg, out
	pterm.Println(out)
	return nil, false
}

func translitOp(intp *Intp, arg string) (error, bool) {
	out := intp.translit.Transliterate(arg)
	intp.lastIn, intp.lastOut = arg, out
	pterm.Println(out)
	return nil, false
}

func detectOp(intp *Intp, arg string) (error, bool) {
	if detect.LooksEncoded(arg, intp.ctx) {
		pterm.Println("legacy-encoded")
	} else {
		pterm.Println("not legacy-encoded")
	}
	return nil, false
}

func statsOp(intp *Intp, arg string) (error, bool) {
	if intp.lastOut == "" {
		return errors.New("nothing converted yet"), false
	}
	pterm.Println(detect.Measure(intp.lastIn, intp.lastOut).String())
	return nil, false
}

func learnOp(intp *Intp, arg string) (error, bool) {
	parts := strings.Fields(arg)
	if len(parts) != 2 {
		return errors.New("usage: learn <roman> <kannada>"), false
	}
	if err := intp.translit.Learn(parts[0], parts[1]); err != nil {
		return err, false
	}
	pterm.Info.Printf("learned %s\n", parts[0])
	return nil, false
}

func forgetOp(intp *Intp, arg string) (error, bool) {
	intp.translit.Forget()
	pterm.Info.Println("forgot all learned words")
	return nil, false
}

func modeOp(intp *Intp, arg string) (error, bool) {
	switch arg {
	case "":
		pterm.Println(intp.mode)
		return nil, false
	case "auto", "to-unicode", "from-unicode", "translit":
		intp.mode = arg
		intp.setPrompt()
		return nil, false
	}
	return fmt.Errorf("unknown mode %q", arg), false
}

func helpOp(intp *Intp, arg string) (error, bool) {
	pterm.Println(`commands:
  to <text>        convert legacy-encoded text to Unicode
  from <text>      convert Unicode text to the legacy encoding
  tr <text>        transliterate romanized input
  detect <text>    guess whether text is legacy-encoded
  stats            statistics of the last conversion
  learn <r> <k>    teach the transliterator a word
  forget           drop all learned words
  mode [m]         show or set mode: auto, to-unicode, from-unicode, translit
  quit             leave (also <ctrl>D)
anything else is converted according to the current mode`)
	return nil, false
}

func quitOp(intp *Intp, arg string) (error, bool) {
	return nil, true
}
