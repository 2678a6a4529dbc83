package telegram

import (
	"time"

	"github.com/pkg/errors"

	"github.com/amarnathcjd/tgloop/internal/session"
)

const (
	Version = "v0.3.0"

	// LookupStateInterval is how often the polling loop asks the server for
	// the current update state, whatever phase it is in.
	LookupStateInterval = time.Hour

	DefaultPort = 443
)

// Endpoint is one default server address.
type Endpoint struct {
	ID   int
	IP   string
	Port int
}

// Environment is the server set used when no auth table exists on disk.
type Environment struct {
	Name        string
	DataCenters []Endpoint
	WorkingDC   int
}

var (
	ProductionEnvironment = Environment{
		Name: "production",
		DataCenters: []Endpoint{
			{1, "149.154.175.58", DefaultPort},
			{2, "149.154.167.50", DefaultPort},
			{3, "149.154.175.100", DefaultPort},
			{4, "149.154.167.91", DefaultPort},
			{5, "91.108.56.151", DefaultPort},
		},
		WorkingDC: 4,
	}

	TestEnvironment = Environment{
		Name: "test",
		DataCenters: []Endpoint{
			{1, "149.154.175.10", DefaultPort},
			{2, "149.154.167.40", DefaultPort},
			{3, "149.154.175.117", DefaultPort},
		},
		WorkingDC: 2,
	}
)

// DefaultEnvironment picks the built-in server set.
func DefaultEnvironment(test bool) Environment {
	if test {
		return TestEnvironment
	}
	return ProductionEnvironment
}

// validate rejects server sets whose auth table could not be read back:
// ids must be in 1..MaxDCIndex and the working DC must be one of them.
func (e Environment) validate() error {
	if len(e.DataCenters) == 0 {
		return errors.Wrapf(ErrBadEnvironment, "%s: no data centers", e.Name)
	}

	listed := false
	for _, ep := range e.DataCenters {
		if ep.ID < 1 || ep.ID > session.MaxDCIndex {
			return errors.Wrapf(ErrBadEnvironment, "%s: dc id %d out of range", e.Name, ep.ID)
		}
		if len(ep.IP) >= session.MaxIPLen {
			return errors.Wrapf(ErrBadEnvironment, "%s: dc %d ip too long", e.Name, ep.ID)
		}
		listed = listed || ep.ID == e.WorkingDC
	}
	if !listed {
		return errors.Wrapf(ErrBadEnvironment, "%s: working dc %d not listed", e.Name, e.WorkingDC)
	}
	return nil
}
