// Package fixtures generates deterministic test corpora: CSV imports salted
// with attack rows, plus numeric, date, string, QIF, and OFX edge-case sets.
// The generator is seeded so a corpus can be reproduced from its run
// parameters alone.
package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generator produces reproducible fixture data from a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator whose output is fully determined by seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var payees = []string{
	"Grocery Store", "Gas Station", "Coffee Shop", "Online Retailer",
	"Utility Company", "Restaurant", "Pharmacy", "Hardware Store",
	"Book Shop", "Streaming Service",
}

var maliciousPayees = []string{
	`=CMD|"/C calc"!A0`,
	`+SUM(1+1)*cmd|' /C calc'!A0`,
	`-2+3+cmd|' /C calc'!A0`,
	`@SUM(1+9)*cmd|' /C calc'!A0`,
	`<script>alert('xss')</script>`,
	`"; DROP TABLE transactions; --`,
	"payee\x00with\x00nulls",
	"payee\u202Ereversed",
}

// CSV renders a transaction import file with rows data rows. When malicious
// is set, formula-prefix and markup payloads are woven into the payee column
// at a fixed cadence so the output exercises import hardening.
func (g *Generator) CSV(rows int, malicious bool) string {
	var b strings.Builder
	b.WriteString("Date,Payee,Category,Amount\n")
	for i := 0; i < rows; i++ {
		date := fmt.Sprintf("2024-%02d-%02d", g.rng.Intn(12)+1, g.rng.Intn(28)+1)
		payee := payees[g.rng.Intn(len(payees))]
		if malicious && i%7 == 0 {
			payee = maliciousPayees[g.rng.Intn(len(maliciousPayees))]
		}
		amount := float64(g.rng.Intn(100000)-50000) / 100
		fmt.Fprintf(&b, "%s,%s,General,%.2f\n", date, csvQuote(payee), amount)
	}
	return b.String()
}

// csvQuote wraps fields containing separators or quotes; quotes are doubled.
func csvQuote(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// NumericEdgeCases returns amount values that probe parser and overflow
// behavior: extremes, precision traps, non-finite spellings, and localized
// separators.
func (g *Generator) NumericEdgeCases() []string {
	return []string{
		"0", "-0", "0.001", "-0.001",
		"999999999.99", "-999999999.99",
		"1e308", "-1e308", "1e-308",
		"NaN", "Infinity", "-Infinity",
		"0.1", "0.30000000000000004",
		"1,000.00", "1.000,00",
		"$100", "100$", " 100 ",
		"0x1F", "1/3",
	}
}

// DateEdgeCases returns date strings spanning boundary days, invalid
// calendar dates, ambiguous locale orderings, and epoch landmarks.
func (g *Generator) DateEdgeCases() []string {
	return []string{
		"2024-02-29", "2023-02-29",
		"2024-12-31", "2025-01-01",
		"2024-13-01", "2024-00-15", "2024-01-32",
		"01/02/2024", "2024/01/02", "02-01-2024",
		"1970-01-01", "2038-01-19", "9999-12-31",
		"0000-01-01", "",
	}
}

// StringEdgeCases returns payee and description values that stress encoding,
// normalization, and injection handling.
func (g *Generator) StringEdgeCases() []string {
	long := strings.Repeat("A", 10000)
	return []string{
		"", " ", "\t", "\n",
		long,
		"café", "café",
		"\u202EteeM", "\uFEFFleading-bom", "zero\u200Bwidth",
		"＜script＞",
		"payee\x00null",
		"'; DELETE FROM accounts; --",
		`{"__proto__": {"polluted": true}}`,
		"=HYPERLINK(\"http://evil.example\",\"click\")",
	}
}

// QIFEdgeCases renders a QIF document whose records carry edge-case fields.
func (g *Generator) QIFEdgeCases() string {
	var b strings.Builder
	b.WriteString("!Type:Bank\n")
	records := []struct{ date, amount, payee string }{
		{"02/29/2024", "-1000000.00", "Leap Day Vendor"},
		{"13/45/2024", "0.00", "Invalid Date Vendor"},
		{"01/15/2024", "NaN", "Non-numeric Amount"},
		{"01/16/2024", "-0.001", `=CMD|"/C calc"!A0`},
		{"01/17/2024", "1e308", "Overflow Vendor"},
	}
	for _, r := range records {
		fmt.Fprintf(&b, "D%s\nT%s\nP%s\n^\n", r.date, r.amount, r.payee)
	}
	return b.String()
}

// OFXEdgeCases renders an OFX statement fragment with malformed and
// injection-bearing transaction entries.
func (g *Generator) OFXEdgeCases() string {
	var b strings.Builder
	b.WriteString("OFXHEADER:100\nDATA:OFXSGML\nVERSION:102\n\n<OFX>\n<BANKMSGSRSV1>\n<STMTTRNRS>\n<STMTRS>\n<BANKTRANLIST>\n")
	entries := []struct{ typ, date, amount, name string }{
		{"DEBIT", "20240229", "-999999999.99", "Boundary Amount"},
		{"DEBIT", "20241345", "10.00", "Invalid Date"},
		{"CREDIT", "20240115", "abc", "Non-numeric Amount"},
		{"DEBIT", "20240116", "-5.00", "<script>alert(1)</script>"},
		{"DEBIT", "20240117", "-0.00", "&lt;entity&gt; encoded"},
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "<STMTTRN>\n<TRNTYPE>%s\n<DTPOSTED>%s\n<TRNAMT>%s\n<FITID>%06d\n<NAME>%s\n</STMTTRN>\n", e.typ, e.date, e.amount, i+1, e.name)
	}
	b.WriteString("</BANKTRANLIST>\n</STMTRS>\n</STMTTRNRS>\n</BANKMSGSRSV1>\n</OFX>\n")
	return b.String()
}
