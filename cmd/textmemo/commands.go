package main

import (
	"fmt"
	"io"

	"textmemo/internal/codec"
	"textmemo/internal/config"
	"textmemo/internal/document"
	"textmemo/internal/editor"
	. "textmemo/internal/logger"
	"textmemo/internal/search"
	"textmemo/internal/utils"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var conf config.Config

	rootCmd := &cobra.Command{
		Use:           "textmemo",
		Short:         "In-memory text editor with undo history and a plain-text file search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			conf = config.GetConfig()
		},
	}

	scanner := func() search.Scanner {
		return search.Scanner{
			Patterns:   conf.Patterns,
			IgnoreDirs: conf.IgnoreDirs,
			Recursive:  conf.IsRecursive(),
			Workers:    conf.Workers,
		}
	}

	demoCmd := &cobra.Command{
		Use:   "demo [dir]",
		Short: "Make one change, undo it, then index dir for keyword1 and keyword2",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "directoryPath"
			if len(args) == 1 { dir = args[0] }
			return runDemo(cmd, scanner(), dir)
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search dir [keyword...]",
		Short: "List files under dir containing every keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := scanner().SearchOnDir(cmd.Context(), args[0], args[1:]...)
			if err != nil { return err }
			for _, path := range results { fmt.Fprintln(cmd.OutOrStdout(), path) }
			return nil
		},
	}

	indexCmd := &cobra.Command{
		Use:   "index dir keyword...",
		Short: "Group files under dir by the keywords they contain",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := scanner().IndexOnDir(cmd.Context(), args[0], args[1:]...)
			if err != nil { return err }
			printIndex(cmd.OutOrStdout(), index, args[1:])
			return nil
		},
	}

	var format string
	saveCmd := &cobra.Command{
		Use:   "save path name content",
		Short: "Write a document to path",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := pickCodec(format, conf.Format, args[0])
			if err != nil { return err }
			return codec.SaveFile(c, args[0], document.New(args[1], args[2]))
		},
	}
	saveCmd.Flags().StringVarP(&format, "format", "f", "", "binary, yaml or json (default: from extension, then config)")

	showCmd := &cobra.Command{
		Use:   "show path",
		Short: "Print a saved document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := pickCodec(format, conf.Format, args[0])
			if err != nil { return err }
			doc, err := codec.LoadFile(c, args[0])
			if err != nil { return err }
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n%s\n", doc.Name, doc.Content)
			return nil
		},
	}
	showCmd.Flags().StringVarP(&format, "format", "f", "", "binary, yaml or json (default: from extension, then config)")

	rootCmd.AddCommand(demoCmd, searchCmd, indexCmd, saveCmd, showCmd)
	return rootCmd
}

// pickCodec prefers the explicit flag, then the file extension, then the configured format.
func pickCodec(flag string, configured string, path string) (codec.Codec, error) {
	if flag != "" { return codec.ByName(flag) }
	if c, err := codec.ForPath(path); err == nil { return c, nil }
	return codec.ByName(configured)
}

func runDemo(cmd *cobra.Command, scanner search.Scanner, dir string) error {
	out := cmd.OutOrStdout()
	e := editor.New(document.New("example.txt", "Hello, world!"))

	fmt.Fprintln(out, "Initial content:")
	fmt.Fprintln(out, e.Render())

	e.Change("Hello, Universe!")
	fmt.Fprintln(out, "Changed content:")
	fmt.Fprintln(out, e.Render())

	e.Undo()
	fmt.Fprintln(out, "Undo change:")
	fmt.Fprintln(out, e.Render())

	keywords := []string{"keyword1", "keyword2"}
	index, err := scanner.IndexOnDir(cmd.Context(), dir, keywords...)
	if err != nil { Log.Error("demo index:", err.Error()); return err }

	fmt.Fprintln(out, "Indexed files:")
	for _, keyword := range uniqueKeywords(keywords) {
		files, ok := index[keyword]
		if !ok { continue }
		fmt.Fprintf(out, "Keyword: %s\n", keyword)
		for _, file := range files { fmt.Fprintf(out, "File: %s\n", file) }
	}
	return nil
}

// uniqueKeywords keeps the first occurrence of each keyword, in argument order.
func uniqueKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	unique := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if _, ok := seen[keyword]; ok { continue }
		seen[keyword] = struct{}{}
		unique = append(unique, keyword)
	}
	return unique
}

func printIndex(out io.Writer, index map[string][]string, keywords []string) {
	keywords = uniqueKeywords(keywords)
	width := utils.MaxString(keywords)
	for _, keyword := range keywords {
		files, ok := index[keyword]
		if !ok { continue }
		for _, file := range files {
			fmt.Fprintln(out, utils.FormatText(keyword, file, width))
		}
	}
}
