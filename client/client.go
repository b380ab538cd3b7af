package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/filter"
	"bikeshare/pager"
	"bikeshare/storage"

	log "github.com/sirupsen/logrus"
)

var (
	cityQuestion  = fmt.Sprintf("Which city would you like to learn about? %s?\n ", strings.Join(filter.Cities, ", "))
	monthQuestion = "\nWhich month would you like to see data for? I have data for January through June, or you can request 'all':\n "
	dayQuestion   = "Which day would you like to see data for? For the whole week, answer 'all':\n "

	firstRowsQuestion = "Would you like to view the first %v lines of raw data, yes or no? "
	nextRowsQuestion  = "Would you like to view the next %v lines of raw data, yes or no? "
	restartQuestion   = "\nWould you like to restart? Enter yes or no.\n"
)

// Client runs the query cycles of the explorer: ask filters, load trips, print statistics,
// save the report, show raw data and offer a restart
type Client struct {
	config   *config.Config
	loader   *dataset.Loader
	prompter *Prompter
	printer  *Printer
	writers  []storage.ReportWriter
}

func NewClient(cfg *config.Config, in io.Reader, out io.Writer, writers ...storage.ReportWriter) *Client {
	return &Client{
		config:   cfg,
		loader:   dataset.NewLoader(cfg.Dataset),
		prompter: NewPrompter(in, out, cfg.Prompt.MaxAttempts, cfg.Prompt.QuitWords),
		printer:  NewPrinter(out),
		writers:  writers,
	}
}

// Run repeats query cycles until the operator declines to restart. If spec is not nil a single
// cycle is run with it and nothing is asked.
func (c *Client) Run(ctx context.Context, spec *filter.Spec) error {
	if spec != nil {
		_, _, err := c.RunQuery(ctx, *spec)
		return err
	}

	fmt.Fprintln(c.prompter.out, "Hello! Let's explore some US bikeshare data!")
	for {
		if ctx.Err() != nil {
			return nil
		}

		err := c.runInteractiveCycle(ctx)
		if errors.Is(err, ErrAborted) {
			log.Info("[method: Run] session finished by the operator")
			return nil
		}
		if err != nil {
			return err
		}

		restart, err := c.prompter.Confirm(restartQuestion)
		if err != nil || !restart {
			return nil
		}
	}
}

func (c *Client) runInteractiveCycle(ctx context.Context) error {
	spec, err := c.getFilters()
	if err != nil {
		return err
	}

	report, trips, err := c.RunQuery(ctx, spec)
	if err != nil {
		// the operator can still restart with other filters
		return nil
	}

	if report.HasData() {
		return c.showRawData(trips)
	}
	return nil
}

// RunQuery loads the trips that match spec, prints their statistics and saves the report
func (c *Client) RunQuery(ctx context.Context, spec filter.Spec) (*queryresponse.QueryResponse, *dataset.Dataset, error) {
	trips, err := c.loader.Load(spec)
	if err != nil {
		log.Errorf("[city: %s][method: RunQuery][status: ERROR] error loading trips: %s", spec.City, err.Error())
		c.printer.PrintError(err)
		return nil, nil, err
	}

	report, err := queryresponse.NewQueryResponse(spec, trips)
	if err != nil {
		log.Errorf("[city: %s][method: RunQuery][status: ERROR] error computing statistics: %s", spec.City, err.Error())
		c.printer.PrintError(err)
		return nil, nil, err
	}

	c.printer.PrintQueryResponse(report)
	c.saveReport(ctx, report)
	return report, trips, nil
}

func (c *Client) getFilters() (filter.Spec, error) {
	city, err := c.prompter.Ask(cityQuestion, filter.ParseCity)
	if err != nil {
		return filter.Spec{}, err
	}

	month, err := c.prompter.Ask(monthQuestion, filter.ParseMonth)
	if err != nil {
		return filter.Spec{}, err
	}

	day, err := c.prompter.Ask(dayQuestion, filter.ParseDay)
	if err != nil {
		return filter.Spec{}, err
	}

	fmt.Fprintln(c.prompter.out, thickSeparator)
	return filter.Spec{City: city, Month: month, Day: day}, nil
}

// showRawData prints pages of trips while the operator asks for more. Every call starts from the first trip.
func (c *Client) showRawData(trips *dataset.Dataset) error {
	rowsPager := pager.NewPager(c.config.Dataset.PageSize)
	question := fmt.Sprintf(firstRowsQuestion, rowsPager.Size)

	for !rowsPager.Done(trips) {
		more, err := c.prompter.Confirm(question)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		rows, err := rowsPager.Next(trips)
		if err != nil {
			log.Errorf("[city: %s][method: showRawData][status: ERROR] %s", trips.City, err.Error())
			c.printer.PrintError(err)
			return nil
		}
		c.printer.PrintRows(rows)
		question = fmt.Sprintf(nextRowsQuestion, rowsPager.Size)
	}

	fmt.Fprintln(c.prompter.out, "There is no more raw data to show.")
	return nil
}

// saveReport hands the report to every writer. A failing writer does not stop the session.
func (c *Client) saveReport(ctx context.Context, report *queryresponse.QueryResponse) {
	for _, writer := range c.writers {
		writeCtx, cancel := context.WithTimeout(ctx, time.Duration(c.config.Report.TimeoutSeconds)*time.Second)
		err := writer.Write(writeCtx, report)
		cancel()
		if err != nil {
			log.Errorf("[query: %s][method: saveReport][status: ERROR] error saving report: %s", report.QueryID, err.Error())
		}
	}
}

// Close closes every report writer
func (c *Client) Close() {
	for _, writer := range c.writers {
		if err := writer.Close(); err != nil {
			log.Errorf("[method: Close] error closing report writer: %s", err.Error())
		}
	}
}
