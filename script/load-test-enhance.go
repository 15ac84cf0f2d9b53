package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       string
	Mode         string
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	ResponseTimes []time.Duration
	UserStats     map[string]map[int]int // status codes per user
	ModeStats     map[string]int
	TotalTime     time.Duration
	Lock          sync.Mutex
}

// creditsResponse is the subset of GET /api/credits read after the run
type creditsResponse struct {
	TotalCredits int `json:"total_credits"`
	Tiers        map[string]struct {
		Credits        int `json:"credits"`
		RemainingToday int `json:"remaining_today"`
	} `json:"tiers"`
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 50, "Total number of requests to make")
	userIDsStr := flag.String("u", "load-user-1,load-user-2", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	modesStr := flag.String("modes", "enhance,colorize,de-scratch", "Comma-separated enhancement modes")
	resolution := flag.String("resolution", "standard", "Resolution tier (standard or hd)")
	imagePath := flag.String("image", "", "Image to upload; a generated PNG is used when empty")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	timeout := flag.Duration("timeout", 2*time.Minute, "Per-request timeout")
	flag.Parse()

	userIDs := splitList(*userIDsStr)
	modes := splitList(*modesStr)
	if len(userIDs) == 0 || len(modes) == 0 {
		fmt.Println("At least one user and one mode are required")
		os.Exit(2)
	}

	payload, err := loadImage(*imagePath)
	if err != nil {
		fmt.Println("Failed to prepare upload:", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: *timeout}

	fmt.Printf("Load testing %s across %d users: %v\n", *baseURL, len(userIDs), userIDs)
	fmt.Printf("Modes: %v, resolution: %s\n", modes, *resolution)
	fmt.Printf("Concurrency: %d goroutines, total requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	before := snapshotCredits(client, *baseURL, userIDs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		UserStats:     make(map[string]map[int]int),
		ModeStats:     make(map[string]int),
	}
	for _, id := range userIDs {
		stats.UserStats[id] = make(map[int]int)
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *resolution, *delayMs, payload, userIDs, modes, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			stats.StatusCounts[result.StatusCode]++
			stats.UserStats[result.UserID][result.StatusCode]++
			stats.ModeStats[result.Mode]++
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			if result.Error != nil {
				stats.ErrorCounts[result.Error.Error()]++
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := len(stats.ResponseTimes)
			stats.Lock.Unlock()
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed\n", completed, *totalRequests)
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()
	stats.TotalTime = time.Since(startTime)

	after := snapshotCredits(client, *baseURL, userIDs)

	printResults(stats)
	printBalances(stats, before, after)
}

func worker(
	client *http.Client,
	baseURL, resolution string,
	delayMs int,
	payload []byte,
	userIDs, modes []string,
	jobs <-chan int,
	results chan<- TestResult,
) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		result := TestResult{
			UserID: userIDs[rand.Intn(len(userIDs))],
			Mode:   modes[rand.Intn(len(modes))],
		}

		req, err := newEnhanceRequest(baseURL, result.UserID, result.Mode, resolution, payload)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		startTime := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(startTime)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusForbidden {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			result.Error = fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		resp.Body.Close()

		results <- result
	}
}

func newEnhanceRequest(baseURL, userID, mode, resolution string, payload []byte) (*http.Request, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range map[string]string{"user_id": userID, "mode": mode, "resolution": resolution} {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	part, err := writer.CreateFormFile("file", "load-test.png")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/enhance", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}

// loadImage reads the upload from disk or draws a small gradient PNG
func loadImage(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func snapshotCredits(client *http.Client, baseURL string, userIDs []string) map[string]creditsResponse {
	snapshot := make(map[string]creditsResponse, len(userIDs))
	for _, id := range userIDs {
		resp, err := client.Get(baseURL + "/api/credits/" + id)
		if err != nil {
			fmt.Printf("Failed to read credits of %s: %v\n", id, err)
			continue
		}
		var credits creditsResponse
		if err := json.NewDecoder(resp.Body).Decode(&credits); err != nil {
			fmt.Printf("Failed to decode credits of %s: %v\n", id, err)
		}
		resp.Body.Close()
		snapshot[id] = credits
	}
	return snapshot
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)*p/100, len(sorted)-1)]
}

func printResults(stats *TestStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(len(sorted))/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		label := http.StatusText(code)
		if code == 0 {
			label = "transport error"
		}
		fmt.Printf("%3d %-22s %d\n", code, label, stats.StatusCounts[code])
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- MODE DISTRIBUTION -----------------")
	for mode, count := range stats.ModeStats {
		fmt.Printf("%-15s: %d requests\n", mode, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-60s: %d\n", errMsg, count)
		}
	}
}

// printBalances checks that no user was charged more often than requests succeeded
func printBalances(stats *TestStats, before, after map[string]creditsResponse) {
	fmt.Println("\n----------------- BALANCES -----------------")
	consistent := true
	for userID, statuses := range stats.UserStats {
		b, a := before[userID], after[userID]
		spent := spendable(b) - spendable(a)
		succeeded := statuses[http.StatusOK]
		fmt.Printf("%-20s succeeded=%d denied=%d spent=%d\n", userID, succeeded, statuses[http.StatusForbidden], spent)
		if spent != succeeded {
			consistent = false
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if consistent {
		fmt.Println("Every successful request was charged exactly once")
	} else {
		fmt.Println("Charged units differ from successful requests (a daily window reset during the run also causes this)")
	}
	fmt.Println("================================================")
}

func spendable(c creditsResponse) int {
	total := 0
	for _, tier := range c.Tiers {
		total += tier.Credits + tier.RemainingToday
	}
	return total
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
