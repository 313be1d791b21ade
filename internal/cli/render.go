package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fragranceshop/fragrance-admin/internal/cascade"
)

func table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	_ = w.Flush()
}

func pageFooter(page, totalPages, total int) {
	fmt.Printf("Page %d of %d (%d total)\n", page, totalPages, total)
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func fieldErrors(errs map[string]string) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var b strings.Builder
	b.WriteString("invalid input:")
	for _, f := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", f, errs[f])
	}
	return fmt.Errorf("%s", b.String())
}

func reportCascade(res cascade.Result) {
	if len(res.Removed) > 0 {
		fmt.Printf("removed %d related order(s)\n", len(res.Removed))
	}
	if len(res.FailedDeps) > 0 {
		fmt.Printf("warning: %d related order delete(s) failed\n", len(res.FailedDeps))
	}
	switch res.Outcome() {
	case cascade.Full:
		fmt.Println("deleted")
	case cascade.Partial:
		fmt.Println("deleted (some related orders remain)")
	}
}
