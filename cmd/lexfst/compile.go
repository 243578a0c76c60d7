package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	lexfst "github.com/shiomura/lexfst-go"
	"github.com/shiomura/lexfst-go/lexicon"
	"github.com/shiomura/lexfst-go/symtab"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Build L and L_disambig transducers from a lexicon",
	Long: `Reads token and word symbol tables, obtains a lexicon (from --lexicon,
or by segmenting every non-special word in the word table), assigns
disambiguation symbols, and writes the lexicons, the extended symbol
tables, and both transducers into the output directory.`,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().String("tokens", "tokens.txt", "token symbol table (SYMBOL ID per line)")
	compileCmd.Flags().String("words", "words.txt", "word symbol table (SYMBOL ID per line)")
	compileCmd.Flags().String("lexicon", "", "existing lexicon file; when empty, words are rune-segmented")
	compileCmd.Flags().String("out", ".", "output directory")
}

func runCompile(cmd *cobra.Command, args []string) error {
	tokensPath, _ := cmd.Flags().GetString("tokens")
	wordsPath, _ := cmd.Flags().GetString("words")
	lexPath, _ := cmd.Flags().GetString("lexicon")
	outDir, _ := cmd.Flags().GetString("out")

	tokens, err := symtab.ReadFile(tokensPath)
	if err != nil {
		return fmt.Errorf("read token table %s: %w", tokensPath, err)
	}
	words, err := symtab.ReadFile(wordsPath)
	if err != nil {
		return fmt.Errorf("read word table %s: %w", wordsPath, err)
	}

	p := lexfst.New(tokens, words)

	var res *lexfst.Result
	if lexPath != "" {
		lex, err := lexicon.LoadFile(lexPath)
		if err != nil {
			return fmt.Errorf("read lexicon %s: %w", lexPath, err)
		}
		res, err = p.CompileLexicon(lex)
		if err != nil {
			return err
		}
	} else {
		res, err = p.Compile()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	outputs := []struct {
		name  string
		write func(path string) error
	}{
		{"lexicon.txt", res.Lexicon.WriteFile},
		{"lexicon_disambig.txt", res.LexiconDisambig.WriteFile},
		{"tokens_disambig.txt", res.Tokens.WriteFile},
		{"words_disambig.txt", res.Words.WriteFile},
		{"L.fst.txt", res.L.WriteFile},
		{"L_disambig.fst.txt", res.LDisambig.WriteFile},
	}
	for _, o := range outputs {
		path := filepath.Join(outDir, o.name)
		if err := o.write(path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	fmt.Fprintf(os.Stderr, "compiled %d entries: max disambig #%d, L has %d arcs, L_disambig has %d arcs\n",
		len(res.Lexicon), res.MaxDisambig, len(res.L.Arcs), len(res.LDisambig.Arcs))
	return nil
}
