//go:build linux

package memory_map

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Read parses /proc/[pid]/maps and returns the regions sorted by start
// address.
func Read(pid int) ([]Region, error) {
	file, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parse(file)
}

func parse(r io.Reader) ([]Region, error) {
	var regions []Region
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		// Address range looks like "00400000-0040b000"
		addrRange := strings.Split(fields[0], "-")
		if len(addrRange) != 2 {
			continue
		}

		start, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}

		end, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil {
			continue
		}

		var path string
		if len(fields) >= 6 {
			path = fields[5]
		}

		regions = append(regions, Region{
			Start: start,
			Size:  uint(end - start),
			Perms: fields[1],
			Path:  path,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Start < regions[j].Start
	})

	return regions, nil
}
