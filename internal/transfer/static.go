package transfer

import "context"

// Static is an asset transfer service with a fixed outcome. With a nil Err
// every transfer commits immediately; used for local deployments where
// custody is handled out of band, and in tests.
type Static struct {
	Err error
}

func (s Static) Transfer(_ context.Context, _ string, _ uint64) error {
	return s.Err
}
