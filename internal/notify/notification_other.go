//go:build !windows

package notify

import "errors"

func sendToast(string, string) error {
	return errors.New("no native toast support on this platform")
}
