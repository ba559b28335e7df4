package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/wichananm65/advocate-directory/internal/advocate"
	"github.com/wichananm65/advocate-directory/internal/directory"
	"github.com/wichananm65/advocate-directory/internal/logging"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// sourceFlags returns fresh flag values for each command that talks to the server.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api",
			Usage:   "Base URL of the advocate directory server",
			Value:   "http://localhost:8080",
			EnvVars: []string{"ADVOCATES_API"},
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout for fetching the advocate list",
			Value: 10 * time.Second,
		},
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "advocates",
		Usage:  "Search the advocate directory from the command line",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: func(c *cli.Context) error {
			_, err := logging.Setup(c.App.ErrWriter, c.String("log-level"))
			return err
		},
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "List advocates matching a free-text query and structured filters",
				Action: searchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Text matched against name, city, degree, specialties and years",
					},
					&cli.StringSliceFlag{
						Name:  "degree",
						Usage: "Only advocates with this degree (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "specialty",
						Usage: "Only advocates with this specialty (repeatable, case-insensitive)",
					},
					&cli.IntFlag{
						Name:  "min-years",
						Usage: "Minimum years of experience",
					},
					&cli.BoolFlag{
						Name:  "expert-only",
						Usage: "Only advocates with 10 or more years of experience",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the result as JSON",
					},
				}, sourceFlags()...),
			},
			{
				Name:   "options",
				Usage:  "List the degrees and specialties that can be filtered on",
				Action: optionsCommand,
				Flags:  sourceFlags(),
			},
		},
	}
}

func searchCommand(c *cli.Context) error {
	if c.IsSet("min-years") && c.Int("min-years") < 0 {
		return fmt.Errorf("--min-years must be >= 0")
	}
	store, err := loadStore(c)
	if err != nil {
		return err
	}

	state := stateFromFlags(c)
	matched := directory.Filter(store, state)

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(advocate.ToResponseList(matched))
	}
	if err := writeTable(c.App.Writer, matched); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "\n%d of %d advocates\n", len(matched), store.Len())
	return err
}

func optionsCommand(c *cli.Context) error {
	store, err := loadStore(c)
	if err != nil {
		return err
	}
	w := c.App.Writer
	fmt.Fprintln(w, "Degrees:")
	for _, d := range directory.DegreeOptions(store) {
		fmt.Fprintf(w, "  %s\n", d)
	}
	fmt.Fprintln(w, "Specialties:")
	for _, s := range directory.SpecialtyOptions(store) {
		fmt.Fprintf(w, "  %s\n", s)
	}
	return nil
}

// loadStore fetches the list once. An unreachable server yields an empty store.
func loadStore(c *cli.Context) (*directory.Store, error) {
	timeout := c.Duration("timeout")
	client := advocate.NewClient(c.String("api"), &http.Client{Timeout: timeout})

	ctx, cancel := context.WithTimeout(c.Context, timeout)
	defer cancel()
	return directory.NewLoader(client, directory.NewHolder()).Refresh(ctx)
}

func stateFromFlags(c *cli.Context) directory.FilterState {
	s := directory.SetQuickText(directory.Reset(), c.String("query"))
	s = directory.SetExpertOnly(s, c.Bool("expert-only"))
	for _, d := range c.StringSlice("degree") {
		if !slices.Contains(s.Degrees, d) {
			s = directory.ToggleDegree(s, d)
		}
	}
	for _, sp := range c.StringSlice("specialty") {
		if !slices.Contains(s.Specialties, sp) {
			s = directory.ToggleSpecialty(s, sp)
		}
	}
	if c.IsSet("min-years") {
		n := c.Int("min-years")
		s = directory.SetMinYears(s, &n)
	}
	return s
}

func writeTable(w io.Writer, advocates []advocate.Advocate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCITY\tDEGREE\tSPECIALTIES\tYEARS\tPHONE")
	for _, a := range advocates {
		years := fmt.Sprintf("%d", a.YearsOfExperience)
		if a.IsExpert() {
			years += " (expert)"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t%s\t%s\n",
			a.FirstName, a.LastName, a.City, a.Degree,
			strings.Join(a.Specialties, ", "), years, advocate.FormatPhone(a.PhoneNumber))
	}
	return tw.Flush()
}
