package bhavcopy

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

const (
	baseURL = "https://nsearchives.nseindia.com/content/fo/"

	// A plain Go user agent gets a 403 from the archive host.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	referer   = "https://www.nseindia.com/"

	requestTimeout = 15 * time.Second
)

// Fetch downloads and extracts the NSE F&O bhavcopy for a trade date.
func Fetch(fetchDate time.Time) ([]Record, error) {
	filename := fmt.Sprintf("BhavCopy_NSE_FO_0_0_0_%s_F_0000.csv", fetchDate.Format("20060102"))
	url := baseURL + filename + ".zip"

	log.WithField("url", url).Info("fetching bhavcopy")

	client := &http.Client{Timeout: requestTimeout}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build bhavcopy request: %s", err)
	}
	req.Header.Add("User-Agent", userAgent)
	req.Header.Add("Accept", "application/zip")
	req.Header.Add("Referer", referer)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download bhavcopy for %s: %s", fetchDate.Format("2006-01-02"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bhavcopy download for %s returned status %d", fetchDate.Format("2006-01-02"), resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read bhavcopy response: %s", err)
	}

	return extract(body, filename)
}

func extract(archive []byte, filename string) ([]Record, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("downloaded file is not a valid zip archive: %s", err)
	}

	f, err := zr.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("csv file %s not found inside the zip: %s", filename, err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("failed to parse bhavcopy csv: %s", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("bhavcopy csv contains no rows")
	}
	return records, nil
}
