package demo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/qa"
)

const ruleWidth = 40

// Run answers every query in order and prints a transcript to w. A failed
// query is printed like any other answer and the batch continues.
func Run(ctx context.Context, w io.Writer, svc qa.Service, queries []string) error {
	if _, err := fmt.Fprintf(w, "Campus Event Q&A Assistant\n%s\n", strings.Repeat("=", ruleWidth)); err != nil {
		return err
	}
	for _, query := range queries {
		answer := svc.AnswerQuery(ctx, query)
		if _, err := fmt.Fprintf(w, "\nQuery: %s\nResponse: %s\n%s\n", query, answer, strings.Repeat("-", ruleWidth)); err != nil {
			return err
		}
	}
	return nil
}

// RunDefault runs the fixed sample queries.
func RunDefault(ctx context.Context, w io.Writer, svc qa.Service) error {
	return Run(ctx, w, svc, config.DemoQueries)
}
