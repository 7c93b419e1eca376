package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// BenchmarkConfig holds benchmark configuration
type BenchmarkConfig struct {
	BaseURL       string
	Duration      time.Duration
	EncodeWorkers int
	SeqWorkers    int
	BatchSize     int
	Compression   string
	APIKey        string
	HTTPClient    *http.Client
}

// Metrics collects latencies for one operation
type Metrics struct {
	Latencies  []float64
	Errors     int64
	Success    int64
	FirstError string
	mu         sync.Mutex
}

func (m *Metrics) record(latency float64, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Latencies = append(m.Latencies, latency)
	if err != nil {
		m.Errors++
		if m.FirstError == "" {
			m.FirstError = err.Error()
		}
		return
	}
	m.Success++
}

// Result represents benchmark results
type Result struct {
	Operation  string
	TotalOps   int64
	SuccessOps int64
	ErrorOps   int64
	Duration   time.Duration
	Throughput float64 // ops/sec
	AvgLatency float64 // ms
	MinLatency float64 // ms
	MaxLatency float64 // ms
	P50Latency float64 // ms
	P95Latency float64 // ms
	P99Latency float64 // ms
	ErrorMsg   string
}

func main() {
	cfg := BenchmarkConfig{}
	flag.StringVar(&cfg.BaseURL, "url", "http://127.0.0.1:5560", "Base URL of the codec service")
	flag.DurationVar(&cfg.Duration, "duration", 30*time.Second, "Benchmark duration")
	flag.IntVar(&cfg.EncodeWorkers, "encode-workers", 8, "Workers issuing encode+decode round trips")
	flag.IntVar(&cfg.SeqWorkers, "sequence-workers", 2, "Workers issuing sequence encode requests")
	flag.IntVar(&cfg.BatchSize, "batch-size", 100, "Values per request")
	flag.StringVar(&cfg.Compression, "compression", "snappy", "Sequence block compression")
	flag.StringVar(&cfg.APIKey, "api-key", "", "API key for authentication")
	flag.Parse()

	cfg.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	fmt.Printf("=== Varint Codec Benchmark ===\n")
	fmt.Printf("  URL: %s\n", cfg.BaseURL)
	fmt.Printf("  Duration: %s\n", cfg.Duration)
	fmt.Printf("  Encode Workers: %d\n", cfg.EncodeWorkers)
	fmt.Printf("  Sequence Workers: %d\n", cfg.SeqWorkers)
	fmt.Printf("  Batch Size: %d\n\n", cfg.BatchSize)

	roundTrip, sequence := runBenchmark(cfg)

	fmt.Printf("\n=== Benchmark Results ===\n\n")
	displayResult(calculateResult("RoundTrip", roundTrip, cfg.Duration))
	fmt.Println()
	displayResult(calculateResult("Sequence", sequence, cfg.Duration))
}

func runBenchmark(cfg BenchmarkConfig) (*Metrics, *Metrics) {
	roundTrip := &Metrics{Latencies: make([]float64, 0, 10000)}
	sequence := &Metrics{Latencies: make([]float64, 0, 1000)}

	var wg sync.WaitGroup
	var stopped atomic.Bool
	for i := 0; i < cfg.EncodeWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for !stopped.Load() {
				start := time.Now()
				err := roundTripOnce(cfg, rng)
				roundTrip.record(time.Since(start).Seconds()*1000, err)
			}
		}(int64(i))
	}
	for i := 0; i < cfg.SeqWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for !stopped.Load() {
				start := time.Now()
				err := sequenceOnce(cfg, rng)
				sequence.record(time.Since(start).Seconds()*1000, err)
			}
		}(int64(1000 + i))
	}

	time.Sleep(cfg.Duration)
	stopped.Store(true)
	wg.Wait()

	return roundTrip, sequence
}

// randomValues skews toward small magnitudes, the case varints are built for
func randomValues(rng *rand.Rand, n int) []string {
	values := make([]string, n)
	for i := range values {
		v := rng.Int63() >> uint(rng.Intn(63))
		if rng.Intn(2) == 0 {
			v = -v
		}
		values[i] = strconv.FormatInt(v, 10)
	}
	return values
}

func roundTripOnce(cfg BenchmarkConfig, rng *rand.Rand) error {
	values := randomValues(rng, cfg.BatchSize)

	var enc struct {
		Encoded []string `json:"encoded"`
	}
	if err := post(cfg, "/v1/encode", map[string]interface{}{"values": values, "signed": true}, &enc); err != nil {
		return err
	}

	var dec struct {
		Values []string `json:"values"`
	}
	if err := post(cfg, "/v1/decode", map[string]interface{}{"encoded": enc.Encoded, "signed": true}, &dec); err != nil {
		return err
	}

	for i := range values {
		if i >= len(dec.Values) || dec.Values[i] != values[i] {
			return fmt.Errorf("round trip mismatch at %d", i)
		}
	}
	return nil
}

func sequenceOnce(cfg BenchmarkConfig, rng *rand.Rand) error {
	values := make([]string, cfg.BatchSize)
	ts := time.Now().Unix()
	for i := range values {
		ts += int64(rng.Intn(3))
		values[i] = strconv.FormatInt(ts, 10)
	}

	body := map[string]interface{}{"values": values, "delta": true, "compression": cfg.Compression}
	return post(cfg, "/v1/sequence/encode", body, nil)
}

func post(cfg BenchmarkConfig, path string, data interface{}, out interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", cfg.BaseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.APIKey != "" {
		req.Header.Set("X-API-Key", cfg.APIKey)
	}

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func calculateResult(operation string, m *Metrics, duration time.Duration) Result {
	latencies := m.Latencies
	if len(latencies) == 0 {
		return Result{Operation: operation, ErrorMsg: m.FirstError}
	}

	sort.Float64s(latencies)

	result := Result{
		Operation:  operation,
		TotalOps:   m.Success + m.Errors,
		SuccessOps: m.Success,
		ErrorOps:   m.Errors,
		Duration:   duration,
		Throughput: float64(m.Success) / duration.Seconds(),
		MinLatency: latencies[0],
		MaxLatency: latencies[len(latencies)-1],
		P50Latency: percentile(latencies, 50),
		P95Latency: percentile(latencies, 95),
		P99Latency: percentile(latencies, 99),
		ErrorMsg:   m.FirstError,
	}

	var sum float64
	for _, lat := range latencies {
		sum += lat
	}
	result.AvgLatency = sum / float64(len(latencies))

	return result
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(math.Ceil(float64(len(sorted)) * p / 100.0))
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}

func displayResult(r Result) {
	fmt.Printf("=== %s Operations ===\n", r.Operation)
	fmt.Printf("Total Operations: %d\n", r.TotalOps)
	if r.TotalOps > 0 {
		fmt.Printf("Success:          %d (%.2f%%)\n", r.SuccessOps, float64(r.SuccessOps)/float64(r.TotalOps)*100)
		fmt.Printf("Errors:           %d (%.2f%%)\n", r.ErrorOps, float64(r.ErrorOps)/float64(r.TotalOps)*100)
	}
	fmt.Printf("Throughput:       %.2f ops/sec\n", r.Throughput)
	if r.ErrorOps > 0 && r.ErrorMsg != "" {
		fmt.Printf("First Error:      %s\n", r.ErrorMsg)
	}
	fmt.Printf("\nLatency (ms):\n")
	fmt.Printf("  Min:  %.2f\n", r.MinLatency)
	fmt.Printf("  Avg:  %.2f\n", r.AvgLatency)
	fmt.Printf("  P50:  %.2f\n", r.P50Latency)
	fmt.Printf("  P95:  %.2f\n", r.P95Latency)
	fmt.Printf("  P99:  %.2f\n", r.P99Latency)
	fmt.Printf("  Max:  %.2f\n", r.MaxLatency)
}
