package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beebem-go/disc8271/fdc"
)

// scriptStep is one line of a register-write script: a register offset
// and the byte value to write, in the same "offset=value" hex notation
// the core's own testable scenarios use.
type scriptStep struct {
	offset int
	value  byte
}

func parseScript(path string) ([]scriptStep, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var steps []scriptStep
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("script line %q: expected offset=value", line)
		}
		offset, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("script line %q: bad offset: %w", line, err)
		}
		value, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("script line %q: bad value: %w", line, err)
		}
		steps = append(steps, scriptStep{offset: int(offset), value: byte(value)})
	}
	return steps, scanner.Err()
}

// playScript applies every step to the controller, then pumps the
// scheduler until the command completes, returning the final result
// register and every byte delivered through the data register along
// the way.
func playScript(c *fdc.Controller, steps []scriptStep) (result byte, delivered []byte) {
	for _, s := range steps {
		c.WriteRegister(s.offset, s.value)
	}

	const maxTicks = 100000
	for i := 0; i < maxTicks; i++ {
		cycle, armed := c.Trigger()
		if !armed {
			break
		}
		c.Tick(cycle)

		status := c.ReadRegister(fdc.OffsetStatus)
		if status&fdc.StatusNonDMAMode != 0 {
			delivered = append(delivered, c.ReadRegister(fdc.OffsetData))
		}
		if status&fdc.StatusResultFull != 0 {
			result = c.ReadRegister(fdc.OffsetResult)
			break
		}
	}
	return result, delivered
}
