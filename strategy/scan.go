package strategy

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/cpu"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/ppatel-ops/Constant-Volatility-Pipeline/models"
	"github.com/ppatel-ops/Constant-Volatility-Pipeline/pricing"
)

const scanJobBatchSize = 256

// QuoteIV is the solver output for one quote in the weekly chain. Solved is
// false for quotes under the minimum tick threshold.
type QuoteIV struct {
	Quote  models.OptionQuote `json:"quote"`
	Result pricing.IVResult   `json:"result"`
	Solved bool               `json:"solved"`
}

type scanJob struct {
	quote models.OptionQuote
	spot  float64
	ttm   float64
	rate  float64
}

// ScanChainIV solves implied volatility for every quote in the weekly
// slice. Each solve is a pure function of its inputs, so the sweep fans out
// over a worker pool; results come back sorted by strike then type.
func ScanChainIV(quotes []models.OptionQuote, spot, ttm, r float64) []QuoteIV {
	if len(quotes) == 0 {
		return nil
	}

	jobs := make([]scanJob, 0, len(quotes))
	for _, q := range quotes {
		jobs = append(jobs, scanJob{quote: q, spot: spot, ttm: ttm, rate: r})
	}

	numCPU := runtime.NumCPU()
	fmt.Printf("Scanning chain IVs for %d quotes using %d CPUs\n", len(jobs), numCPU)

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(jobs)),
		mpb.PrependDecorators(
			decor.Name("Chain IV"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	stopMonitor := make(chan struct{})
	go monitorCPUUsage(stopMonitor)

	results := processScanJobs(jobs, numCPU, bar)
	close(stopMonitor)
	p.Wait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Quote.Strike != results[j].Quote.Strike {
			return results[i].Quote.Strike < results[j].Quote.Strike
		}
		return results[i].Quote.Type < results[j].Quote.Type
	})
	return results
}

func processScanJobs(jobs []scanJob, numWorkers int, bar *mpb.Bar) []QuoteIV {
	var wg sync.WaitGroup
	jobChan := make(chan scanJob, scanJobBatchSize)
	resultChan := make(chan QuoteIV, scanJobBatchSize)
	var processed int64

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go scanWorker(jobChan, resultChan, &wg, &processed, bar)
	}

	go func() {
		for _, j := range jobs {
			jobChan <- j
		}
		close(jobChan)
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var results []QuoteIV
	for res := range resultChan {
		results = append(results, res)
	}
	return results
}

func scanWorker(jobs <-chan scanJob, results chan<- QuoteIV, wg *sync.WaitGroup, processed *int64, bar *mpb.Bar) {
	defer wg.Done()
	for j := range jobs {
		result, ok := pricing.ImpliedVolatility(j.quote.ClosePrice, j.spot, j.quote.Strike, j.ttm, j.rate, j.quote.Type)
		results <- QuoteIV{Quote: j.quote, Result: result, Solved: ok}
		atomic.AddInt64(processed, 1)
		bar.Increment()
	}
}

func monitorCPUUsage(stop <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			percentage, err := cpu.Percent(time.Second, false)
			if err == nil && len(percentage) > 0 {
				fmt.Printf("\nCPU Usage: %.2f%%\n", percentage[0])
			}
		}
	}
}
