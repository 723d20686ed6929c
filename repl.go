package main

import (
	"fmt"
	"lisp/eval"
	"lisp/lexer"
	"lisp/parser"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

const (
	promptMain = "> "
	promptCont = "... "
)

// completer completes the name under the cursor against the names
// bound in the session.
type completer struct {
	ic *eval.InteractiveContext
}

// wordStart returns the index where the word ending at pos begins.
func wordStart(line []rune, pos int) int {
	start := pos
	for start > 0 {
		switch line[start-1] {
		case ' ', '\t', '(', ')':
			return start
		}
		start--
	}
	return start
}

func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	start := wordStart(line, pos)
	prefix := string(line[start:pos])
	candidates := [][]rune{}
	for _, name := range c.ic.Complete(prefix) {
		candidates = append(candidates, []rune(name[len(prefix):]+" "))
	}
	return candidates, len([]rune(prefix))
}

// readEntry keeps reading continuation lines for as long as the input
// so far only lacks closing parens. ok is false once input is exhausted.
func readEntry(rl *readline.Instance) (entry string, ok bool) {
	var b strings.Builder
	rl.SetPrompt(promptMain)
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// discard the pending entry.
			b.Reset()
			rl.SetPrompt(promptMain)
			continue
		}
		if err != nil {
			// io.EOF on Ctrl-D.
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if _, err := parser.Parse(lexer.Tokenize(src)); parser.IsIncomplete(err) {
			rl.SetPrompt(promptCont)
			continue
		}
		return src, true
	}
}

func repl(ic *eval.InteractiveContext, historyPath string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 promptMain,
		HistoryFile:            historyPath,
		DisableAutoSaveHistory: true,
		AutoComplete:           completer{ic},
		InterruptPrompt:        "^C",
		EOFPrompt:              "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		entry, ok := readEntry(rl)
		if !ok {
			return nil
		}
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return nil
		}
		rl.SaveHistory(strings.Join(strings.Fields(entry), " "))

		v, err := ic.Run(entry)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(ic.Inspect(v))
	}
}
