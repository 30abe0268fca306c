package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadMap parses the plain text board format:
//
//	<locations> <links>
//	<location id>            (one line per location)
//	<a> <b> <Transport>      (one line per link)
//
// Transport names are Taxi, Bus, Underground and Boat.
func ReadMap(r io.Reader) (*Map, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	next := func() ([]string, error) {
		for scanner.Scan() {
			line++
			fields := strings.Fields(scanner.Text())
			if len(fields) > 0 {
				return fields, nil
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read map: %w", err)
		}
		return nil, io.ErrUnexpectedEOF
	}

	header, err := next()
	if err != nil {
		return nil, fmt.Errorf("failed to read map header: %w", err)
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("line %d: header must be \"<locations> <links>\"", line)
	}
	numLocations, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: bad location count: %w", line, err)
	}
	numLinks, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: bad link count: %w", line, err)
	}

	m := NewMap()
	for i := 0; i < numLocations; i++ {
		fields, err := next()
		if err != nil {
			return nil, fmt.Errorf("reading location %d of %d: %w", i+1, numLocations, err)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad location id: %w", line, err)
		}
		m.AddLocation(id)
	}

	for i := 0; i < numLinks; i++ {
		fields, err := next()
		if err != nil {
			return nil, fmt.Errorf("reading link %d of %d: %w", i+1, numLinks, err)
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: link must be \"<a> <b> <transport>\"", line)
		}
		a, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad link endpoint: %w", line, err)
		}
		b, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad link endpoint: %w", line, err)
		}
		t, err := ParseTransport(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !m.Has(a) || !m.Has(b) {
			return nil, fmt.Errorf("line %d: link %d-%d references an undeclared location", line, a, b)
		}
		m.AddEdge(a, b, t)
	}
	return m, nil
}
