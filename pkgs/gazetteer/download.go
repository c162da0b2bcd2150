package gazetteer

import (
	"context"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// ensureFile downloads url to path unless the file already exists.
func ensureFile(ctx context.Context, url string, path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}

	log.WithFields(log.Fields{"url": url, "path": path}).Infoln("downloading gazetteer data")

	resp, err := resty.New().R().
		SetContext(ctx).
		SetOutput(path).
		Get(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		os.Remove(path)
		return fmt.Errorf("unexpected status %s from %s", resp.Status(), url)
	}
	return nil
}
