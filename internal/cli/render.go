package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"curconv/internal/domain"
	"curconv/internal/rate"
)

var (
	headline = color.New(color.Bold)
	label    = color.New(color.Underline)
	code     = color.New(color.FgHiGreen)
	amount   = color.New(color.FgHiYellow)
)

// renderResult prints the conversion outcome, amounts at four decimals.
func renderResult(w io.Writer, res domain.ConversionResult) {
	fmt.Fprintf(w, "%s %s %s = %s %s\n",
		label.Sprint("Actual exchange rate:"),
		code.Sprint(res.From),
		amount.Sprintf("%.4f", res.AmountFrom),
		code.Sprint(res.To),
		amount.Sprintf("%.4f", res.AmountTo),
	)
}

// renderUsualList prints the table codes that have a known display name.
func renderUsualList(w io.Writer, table domain.RateTable) {
	headline.Fprintln(w, "Usual exchange rates:\n---------------------")
	fmt.Fprintln(w)
	fmt.Fprintln(w, " Abbr| Currency Name\n-----|----------------------")
	for _, c := range table.Codes() {
		if name, ok := rate.Name(c); ok {
			fmt.Fprintf(w, " %s | %s\n", c, name)
		}
	}
	fmt.Fprintln(w)
	headline.Fprintln(w, "Use the abbreviation to calc the exchange rates.")
}

// renderCompleteList prints every code the snapshot carries.
func renderCompleteList(w io.Writer, table domain.RateTable) {
	headline.Fprintln(w, "All available exchange rates:\n-----------------------------")
	fmt.Fprintln(w)
	for _, c := range table.Codes() {
		fmt.Fprintf(w, "| %s ", c)
	}
	fmt.Fprintln(w, "|")
	fmt.Fprintln(w)
	headline.Fprintln(w, "Use the abbreviation to calc the exchange rates.")
}

func renderVersion(w io.Writer, version string) {
	fmt.Fprintf(w, "curconv v%s\n", version)
}

func renderHelp(w io.Writer, version string) {
	headline.Fprintln(w, "curconv v"+version)
	fmt.Fprint(w, `
USAGE:
------
curconv [<OPTIONS>] [<AMOUNT>] [FROM] = [TO]

OPTIONS:
--------
-l,  --list        same as '--list-usual'
-la, --list-all    list all available currencies (long list)
-lu, --list-usual  list the usual currencies for exchange
-h,  --help        show this help
-V,  --version     show the program version and exit

CURRENCY:
---------
FROM    The currency you have
TO      The currency you want to exchange into
AMOUNT  The amount you want to change, if not set, the exchange value is 1.00

HINTS:
------
* You can use the '.' (dot) or the ',' (comma) for the amount.
* For the equality sign '=' you can use an arrow '->' or a greater than '>'.
* To define the currencies use their abbreviations. Try 'curconv -la'
  if you want a list of all currencies.
* The rates refresh every hour, depending on the age of the stored
  snapshot file in the system's temporary path.
`)
}
