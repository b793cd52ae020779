package array

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gostdlib/iarray/errors"
	"github.com/gostdlib/iarray/internal/envvar"
	"github.com/gostdlib/iarray/telemetry/log"
)

// Policy is the freeze policy applied to an Array when it is created.
type Policy uint8

const (
	// None does not enforce anything. An Array is only immutable by convention and Put() and
	// SetLen() will change it.
	None Policy = 0
	// Shallow freezes the Array itself. Put() and SetLen() return an error. Values stored in the
	// Array are not touched.
	Shallow Policy = 1
	// Deep freezes the Array and every Freezable value reachable from it that is not already frozen.
	Deep Policy = 2
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case None:
		return "NONE"
	case Shallow:
		return "SHALLOW"
	case Deep:
		return "DEEP"
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

func (p Policy) valid() bool {
	return p <= Deep
}

// ParsePolicy converts the string form of a Policy (NONE, SHALLOW or DEEP) to a Policy. Case and
// surrounding whitespace are ignored.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return None, nil
	case "SHALLOW":
		return Shallow, nil
	case "DEEP":
		return Deep, nil
	}
	return None, errorf(errors.TypeArgument, "unknown freeze policy %q, must be one of NONE, SHALLOW or DEEP", s)
}

var (
	policy     atomic.Uint32
	policyOnce sync.Once
)

// loadPolicy sets the process policy from the environment. It runs once, the first time the
// policy is read or written.
func loadPolicy() {
	v, ok := os.LookupEnv(envvar.FreezePolicy)
	if !ok {
		return
	}
	p, err := ParsePolicy(v)
	if err != nil {
		log.Default().LogAttrs(
			context.Background(),
			slog.LevelWarn,
			"ignoring invalid freeze policy in the environment",
			slog.String("var", envvar.FreezePolicy),
			slog.String("value", v),
		)
		return
	}
	policy.Store(uint32(p))
}

// CurrentPolicy returns the process wide freeze policy that is applied to Arrays that are created
// without WithPolicy().
func CurrentPolicy() Policy {
	policyOnce.Do(loadPolicy)
	return Policy(policy.Load())
}

// SetPolicy sets the process wide freeze policy. It only affects Arrays created after the call.
// This should be called once during program startup.
func SetPolicy(p Policy) error {
	if !p.valid() {
		return errorf(errors.TypeArgument, "invalid freeze policy %d", uint8(p))
	}
	policyOnce.Do(loadPolicy)

	old := Policy(policy.Swap(uint32(p)))
	if old != p {
		log.Default().LogAttrs(
			context.Background(),
			slog.LevelInfo,
			"iarray freeze policy changed",
			slog.String("old", old.String()),
			slog.String("new", p.String()),
		)
	}
	return nil
}

// lineage is the policy carried from an Array to the Arrays derived from it.
type lineage struct {
	pinned bool
	policy Policy
}

// current returns the policy to enforce on a new Array of this lineage.
func (l lineage) current() Policy {
	if l.pinned {
		return l.policy
	}
	return CurrentPolicy()
}
