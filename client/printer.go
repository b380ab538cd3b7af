package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/stationstats"
	"bikeshare/domain/business/timestats"
	"bikeshare/domain/business/userstats"
	"bikeshare/domain/entities/trip"
)

const noTripsMessage = "No trips match the selected filters."

var (
	thickSeparator = strings.Repeat("-", 80)
	thinSeparator  = strings.Repeat("-", 40)
)

// Printer writes the statistics as labelled lines
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) PrintQueryResponse(qr *queryresponse.QueryResponse) {
	fmt.Fprintln(p.out, thickSeparator)
	fmt.Fprintf(p.out, "%v trips for %s\n", qr.Trips, qr.Filter)

	p.printTimeStats(qr.Time)
	p.printStationStats(qr.Stations)
	p.printDurationStats(qr.Duration)
	p.printUserStats(qr.Filter.City, qr.Users)
}

func (p *Printer) printTimeStats(stats *timestats.TimeStats) {
	fmt.Fprint(p.out, "\nCalculating The Most Frequent Times of Travel...\n\n")
	if !stats.HasData() {
		fmt.Fprintln(p.out, noTripsMessage)
	} else {
		fmt.Fprintln(p.out, "The most popular month is:", stats.PopularMonthName())
		fmt.Fprintln(p.out, "The most popular day of the week is:", stats.PopularDay)
		fmt.Fprintln(p.out, "The most popular start hour is:", stats.PopularHour)
	}
	fmt.Fprintln(p.out, thinSeparator)
}

func (p *Printer) printStationStats(stats *stationstats.StationStats) {
	fmt.Fprint(p.out, "\nCalculating The Most Popular Stations...\n\n")
	if !stats.HasData() {
		fmt.Fprintln(p.out, noTripsMessage)
	} else {
		fmt.Fprintln(p.out, "Most popular station to start a trip:", stats.PopularStartStation)
		fmt.Fprintln(p.out, "Most popular station to end a trip:", stats.PopularEndStation)
	}
	fmt.Fprintln(p.out, thinSeparator)
}

func (p *Printer) printDurationStats(stats *durationaccumulator.DurationAccumulator) {
	fmt.Fprint(p.out, "\nCalculating Trip Duration...\n\n")
	average, ok := stats.GetAverageDuration()
	if !ok {
		fmt.Fprintln(p.out, noTripsMessage)
	} else {
		fmt.Fprintln(p.out, "The total travel time was:", formatSeconds(stats.TotalDuration))
		fmt.Fprintln(p.out, "The average travel time was:", formatSeconds(average))
	}
	fmt.Fprintln(p.out, thinSeparator)
}

func (p *Printer) printUserStats(city string, stats *userstats.UserStats) {
	fmt.Fprint(p.out, "\nCalculating User Stats...\n\n")
	if stats.Trips == 0 {
		fmt.Fprintln(p.out, noTripsMessage)
		fmt.Fprintln(p.out, thinSeparator)
		return
	}

	fmt.Fprintln(p.out, "User Types:")
	p.printCounts(stats.UserTypes)

	if stats.HasGender {
		fmt.Fprintln(p.out, "Gender Counts:")
		p.printCounts(stats.Genders)
	} else {
		fmt.Fprintf(p.out, "\nThere is no gender info available for %s.\n", city)
	}

	if stats.HasBirthYear {
		fmt.Fprintln(p.out, "\nThe earliest birth year is:", stats.EarliestBirthYear)
		fmt.Fprintln(p.out, "The most recent birth year is:", stats.MostRecentBirthYear)
		commonBirthYears := make([]string, 0, len(stats.CommonBirthYears))
		for _, birthYear := range stats.CommonBirthYears {
			commonBirthYears = append(commonBirthYears, strconv.Itoa(birthYear))
		}
		fmt.Fprintln(p.out, "The most common birth year is:", strings.Join(commonBirthYears, ", "))
	} else {
		fmt.Fprintf(p.out, "\nThere is no birth year data available for %s.\n", city)
	}
	fmt.Fprintln(p.out, thinSeparator)
}

func (p *Printer) printCounts(counts []frequency.Count[string]) {
	for _, count := range counts {
		fmt.Fprintf(p.out, "  %s: %v\n", count.Value, count.Count)
	}
}

func (p *Printer) PrintRows(rows []trip.TripData) {
	for _, row := range rows {
		fmt.Fprintln(p.out, row)
	}
}

func (p *Printer) PrintError(err error) {
	fmt.Fprintf(p.out, "\nSorry, the data could not be analyzed: %s\n", err.Error())
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + " seconds"
}
