package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/semterms/ontology/sqlite"
	"github.com/c360studio/semterms/vocabulary/obo"
)

// ontologyDoc is the YAML shape consumed by the build command.
type ontologyDoc struct {
	Terms map[string]string `yaml:"terms"`
	Edges []edgeDoc         `yaml:"edges"`
}

type edgeDoc struct {
	Subject   string `yaml:"subject"`
	Predicate string `yaml:"predicate"`
	Object    string `yaml:"object"`
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build DB TERMS_FILE",
		Short: "Build a SQLite ontology database from a YAML term file",
		Long: `Build (or extend) an ontology database readable by the sqlite
adapter. The input document carries a "terms" mapping from CURIE to label
and an "edges" list of subject/predicate/object assertions; edges without a
predicate default to the subclass relation.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, termsPath := args[0], args[1]

			data, err := os.ReadFile(termsPath)
			if err != nil {
				return fmt.Errorf("read terms file: %w", err)
			}
			var doc ontologyDoc
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse terms file: %w", err)
			}

			ctx := cmd.Context()
			adapter, err := sqlite.Open(ctx, dbPath)
			if err != nil {
				return err
			}
			defer adapter.Close()

			for curie, label := range doc.Terms {
				if err := adapter.AddTerm(ctx, curie, label); err != nil {
					return err
				}
			}
			for _, e := range doc.Edges {
				predicate := e.Predicate
				if predicate == "" {
					predicate = obo.SubClassOf
				}
				if err := adapter.AddEdge(ctx, e.Subject, predicate, e.Object); err != nil {
					return err
				}
			}

			fmt.Printf("wrote %d terms and %d edges to %s\n", len(doc.Terms), len(doc.Edges), dbPath)
			return nil
		},
	}
}
