package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// flagDie terminates the program with an invalid argument message.
func flagDie(description string, args ...interface{}) {
	if !strings.HasSuffix(description, "\n") {
		description += "\n"
	}
	fmt.Fprintf(os.Stderr, description, args...)
	os.Exit(2)
}

// flStrings returns a value that collects all occurrences of a command line
// argument. This function follows Go's flag package convention.
func flStrings(fl *flag.FlagSet, name, usage string) *[]string {
	var s stringsFlag
	fl.Var(&s, name, usage)
	return (*[]string)(&s)
}

type stringsFlag []string

func (s *stringsFlag) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringsFlag) Set(raw string) error {
	*s = append(*s, raw)
	return nil
}

// flTime returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flTime(fl *flag.FlagSet, name string, defaultVal func() time.Time, usage string) *flagTime {
	var t flagTime
	if defaultVal != nil {
		t = flagTime{time: defaultVal()}
	}
	fl.Var(&t, name, usage)
	return &t
}

// flagTime is a point in time given in the RFC3339 format. Empty value means
// no time.
type flagTime struct {
	time time.Time
}

func (t flagTime) Time() time.Time {
	return t.time
}

func (t *flagTime) String() string {
	if t == nil || t.time.IsZero() {
		return ""
	}
	return t.time.Format(time.RFC3339)
}

func (t *flagTime) Set(raw string) error {
	if raw == "" {
		t.time = time.Time{}
		return nil
	}
	val, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("time must be in RFC3339 format, for example %s", time.Now().UTC().Format(time.RFC3339))
	}
	t.time = val
	return nil
}

// flagsSet returns the names of all flags that were provided as command
// line arguments.
func flagsSet(fl *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fl.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
