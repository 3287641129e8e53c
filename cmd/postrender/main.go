// Command postrender renders a post body to HTML or to the JSON tree.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Drolfothesgnir/chanpost/markup"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	formatHTML = "html"
	formatJSON = "json"
)

type options struct {
	format    string
	lexer     string
	statePath string
	cmdsPath  string
	outPath   string
	id        uint64
	op        uint64
	board     string
	whole     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	flags := pflag.NewFlagSet("postrender", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", formatHTML, "Output format: html|json")
	flags.StringVarP(&opts.lexer, "lexer", "l", markup.DefaultLexer, "Chroma lexer for code spans")
	flags.StringVarP(&opts.statePath, "state", "s", "", "JSON snapshot to continue rendering from")
	flags.StringVarP(&opts.cmdsPath, "commands", "c", "", "JSON file with the resolved hash commands")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.Uint64Var(&opts.id, "id", 1, "Post ID")
	flags.Uint64Var(&opts.op, "op", 1, "Thread ID")
	flags.StringVar(&opts.board, "board", "", "Board of the post")
	flags.BoolVar(&opts.whole, "post", false, "Render the whole post article instead of the body only")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: postrender [flags] [file]\n")
		fmt.Fprintln(stderr, "\nIf no file is provided, the body is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.format != formatHTML && opts.format != formatJSON {
		fmt.Fprintf(stderr, "unknown format %q\n", opts.format)
		return 2
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return 2
	}

	body, err := readBody(flags.Args(), stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	post := &markup.Post{
		ID:    opts.id,
		OP:    opts.op,
		Board: opts.board,
		Body:  body,
	}

	var snap markup.Snapshot
	if err := readJSON(opts.statePath, &snap); err != nil {
		fmt.Fprintf(stderr, "read state: %v\n", err)
		return 1
	}
	if err := readJSON(opts.cmdsPath, &post.Commands); err != nil {
		fmt.Fprintf(stderr, "read commands: %v\n", err)
		return 1
	}

	out, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	if err := render(out, markup.NewRenderer(markup.WithLexer(opts.lexer)), post, snap, opts); err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	return 0
}

func render(w io.Writer, r *markup.Renderer, post *markup.Post, snap markup.Snapshot, opts options) (err error) {
	// commands that do not match the body make the renderer panic
	defer func() {
		if v := recover(); v != nil {
			var ie *markup.InvariantError
			if e, ok := v.(error); ok && errors.As(e, &ie) {
				err = ie
				return
			}
			panic(v)
		}
	}()

	var tree *markup.Tree
	if opts.whole {
		tree = r.Render(post)
	} else {
		tree, snap = r.ResumeBody(post, snap)
	}

	if opts.format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Tree  markup.SerializableNode `json:"tree"`
			State markup.Snapshot         `json:"state"`
		}{tree.Serialize(), snap})
	}

	if err := tree.RenderHTML(w); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// readBody reads the file in args or stdin. Trailing newlines are dropped
// so editors' final newline does not render as a line break.
func readBody(args []string, stdin io.Reader, stderr io.Writer) (string, error) {
	var r io.Reader = stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	} else if isTerminal(stdin) {
		fmt.Fprintln(stderr, "reading post body from the terminal, finish with Ctrl-D")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func readJSON(path string, dst any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
