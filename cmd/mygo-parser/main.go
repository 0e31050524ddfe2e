// Command mygo-parser reads a grammar source file and an input file,
// builds an SLR(1) parser, tokenizes and parses the input, and writes the
// parser, CST, and AST as JSON, following the pipeline order of
// original_source/src/main.cpp.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/finger-bone/mygo-parser/internal/ast"
	"github.com/finger-bone/mygo-parser/internal/cache"
	"github.com/finger-bone/mygo-parser/internal/gsrc"
	"github.com/finger-bone/mygo-parser/internal/jsonexport"
	"github.com/finger-bone/mygo-parser/internal/lex"
	"github.com/finger-bone/mygo-parser/internal/slr"
)

// config holds the options the CLI accepts via flags or a TOML config file;
// flags always override a loaded config value.
type config struct {
	OutDir  string `toml:"out_dir"`
	Strict  bool   `toml:"strict"`
	Cache   string `toml:"cache_dir"`
}

func defaultConfig() config {
	return config{OutDir: ".", Strict: false, Cache: ""}
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		grammarFile = flag.String("grammar", "grammar.txt", "grammar source file")
		inputFile   = flag.String("input", "test.mygo", "input source file to tokenize and parse")
		start       = flag.String("start", "program", "start symbol")
		configFile  = flag.String("config", "", "optional TOML config file")
		outDirFlag  = flag.String("out-dir", ".", "directory to write the JSON dumps to")
		strict      = flag.Bool("strict", false, "fail table construction on any conflict")
		verbose     = flag.Bool("verbose", false, "print each token as it is lexed")
		dumpTable   = flag.Bool("dump-table", false, "print the ACTION/GOTO table to stdout")
		printTree   = flag.Bool("print-tree", false, "print the CST/AST as ASCII trees to stdout")
		trace       = flag.Bool("trace", false, "step through the parse interactively")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configFile != "" {
		if _, err := toml.DecodeFile(*configFile, &cfg); err != nil {
			pterm.Error.Printf("reading config: %v\n", err)
			return 1
		}
	}
	if flag.Lookup("strict").Changed {
		cfg.Strict = *strict
	}
	if flag.Lookup("out-dir").Changed {
		cfg.OutDir = *outDirFlag
	}

	runID := uuid.New()
	started := time.Now()

	grammarSrc, err := os.ReadFile(*grammarFile)
	if err != nil {
		pterm.Error.Printf("reading grammar file: %v\n", err)
		return 1
	}

	g, err := gsrc.Parse(string(grammarSrc))
	if err != nil {
		pterm.Error.Printf("grammar parse error: %v\n", err)
		return 1
	}

	if undef := g.UndefinedNonTerminals(); len(undef) > 0 {
		pterm.Error.Printf("undefined non-terminals: %v\n", undef)
		return 2
	}

	inputSrc, err := os.ReadFile(*inputFile)
	if err != nil {
		pterm.Error.Printf("reading input file: %v\n", err)
		return 1
	}

	terminals := g.ExtractTerminals()
	literals := make([]string, len(terminals))
	for i, t := range terminals {
		literals[i] = t.Name
	}
	tokenizer := lex.NewTokenizer(literals)
	tokens, skips := tokenizer.Tokenize(string(inputSrc))
	for _, sk := range skips {
		pterm.Warning.Println(sk.Error())
	}
	if *verbose {
		for _, tok := range tokens {
			fmt.Printf("%s:%d %q\n", filepath.Base(*inputFile), tok.Line, tok.Lexeme)
		}
	}

	var opts []slr.BuildOption
	if cfg.Strict {
		opts = append(opts, slr.StrictMode())
	}

	var parser *slr.Parser
	var conflicts []error
	cacheKey := cache.Key(string(grammarSrc))
	if cfg.Cache != "" {
		if snap, hit, err := cache.Load(cfg.Cache, cacheKey); err != nil {
			pterm.Warning.Printf("reading cache: %v\n", err)
		} else if hit && len(snap.Productions) > 0 && len(snap.Productions[0].RHS) == 1 &&
			snap.Productions[0].RHS[0].Name == *start {
			p, c, err := slr.BuildFromAugmented(snap.Productions, snap.StartSymbol, opts...)
			if err != nil {
				pterm.Error.Printf("table build error: %v\n", err)
				return 3
			}
			parser = p
			for _, cf := range c {
				cf := cf
				conflicts = append(conflicts, &cf)
			}
			pterm.Info.Printf("loaded cached table for %s\n", cacheKey[:12])
		}
	}

	if parser == nil {
		p, c, err := slr.Build(g, *start, opts...)
		if err != nil {
			pterm.Error.Printf("table build error: %v\n", err)
			return 3
		}
		parser = p
		for _, cf := range c {
			cf := cf
			conflicts = append(conflicts, &cf)
		}

		if cfg.Cache != "" {
			snap := &cache.Snapshot{Productions: parser.Productions, StartSymbol: parser.StartSymbol}
			if err := cache.Store(cfg.Cache, cacheKey, snap); err != nil {
				pterm.Warning.Printf("writing cache: %v\n", err)
			}
		}
	}

	for _, c := range conflicts {
		pterm.Warning.Println(c.Error())
	}

	if *dumpTable {
		fmt.Println(parser.String())
	}

	outDir := cfg.OutDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		pterm.Error.Printf("creating output directory: %v\n", err)
		return 1
	}

	if err := writeJSON(filepath.Join(outDir, "slr_parser.json"), func(f *os.File) error {
		return jsonexport.DumpParser(f, parser)
	}); err != nil {
		pterm.Error.Printf("writing slr_parser.json: %v\n", err)
		return 1
	}

	var traceFn slr.TraceFunc
	var repl *readline.Instance
	if *trace {
		repl, err = readline.New("step> ")
		if err != nil {
			pterm.Error.Printf("initializing trace prompt: %v\n", err)
			return 1
		}
		defer repl.Close()
		traceFn = func(kind slr.StepKind, state int, tok lex.Token) {
			fmt.Fprintf(os.Stderr, "state %d, token %q: %v\n", state, tok.Lexeme, kind)
			repl.Readline()
		}
	}

	tree, err := parser.Parse(lex.NewStream(tokens), traceFn)
	if err != nil {
		pterm.Error.Printf("parse error: %v\n", err)
		return 4
	}
	if *printTree {
		fmt.Println(tree.String())
	}

	if err := writeJSON(filepath.Join(outDir, "parser_tree_cst.json"), func(f *os.File) error {
		return jsonexport.DumpTree(f, tree)
	}); err != nil {
		pterm.Error.Printf("writing parser_tree_cst.json: %v\n", err)
		return 1
	}

	astTree, err := ast.Reshape(parser.Productions, tree)
	if err != nil {
		pterm.Error.Printf("ast reshape error: %v\n", err)
		return 5
	}
	if *printTree {
		fmt.Println(astTree.String())
	}

	if err := writeJSON(filepath.Join(outDir, "parser_tree_ast.json"), func(f *os.File) error {
		return jsonexport.DumpTree(f, astTree)
	}); err != nil {
		pterm.Error.Printf("writing parser_tree_ast.json: %v\n", err)
		return 1
	}

	pterm.Success.Printf("run %s: %s item sets, %s tokens in %s\n",
		runID, humanize.Comma(int64(len(parser.Collection.States))),
		humanize.Comma(int64(len(tokens))), time.Since(started))

	return 0
}

func writeJSON(path string, dump func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dump(f)
}
