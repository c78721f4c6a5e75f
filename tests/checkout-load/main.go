package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/auth"
	"github.com/google/uuid"
)

// Fires concurrent checkouts for one product from several buyers. With stock N
// exactly N requests should get 201 and the rest 400 (insufficient stock) or 409.
func main() {
	baseURL := flag.String("url", "http://localhost:8080/api", "api base url")
	secret := flag.String("secret", "", "JWT secret shared with the server")
	issuer := flag.String("issuer", "", "JWT issuer")
	buyers := flag.String("buyers", "", "comma separated buyer account ids")
	product := flag.String("product", "", "product id")
	requests := flag.Int("n", 50, "number of concurrent checkouts")
	flag.Parse()

	if *secret == "" || *buyers == "" || *product == "" {
		log.Fatal("secret, buyers and product are required")
	}

	var tokens []string
	for _, raw := range strings.Split(*buyers, ",") {
		token, err := auth.IssueToken(*secret, *issuer, uuid.MustParse(raw), time.Hour)
		if err != nil {
			log.Fatal("failed to issue token: ", err)
		}
		tokens = append(tokens, token)
	}

	body := fmt.Sprintf(`{"products":[{"product":%q,"quantity":1}],"shippingAddress":{"street":"1 Farm Rd","city":"Kumasi","country":"Ghana"},"paymentMethod":"cash"}`, *product)
	client := &http.Client{Timeout: 10 * time.Second}

	var (
		mu    sync.Mutex
		codes = make(map[string]int)
		wg    sync.WaitGroup
	)
	start := time.Now()
	for i := range *requests {
		token := tokens[i%len(tokens)]
		wg.Go(func() {
			status := checkout(client, *baseURL, token, body)
			mu.Lock()
			codes[status]++
			mu.Unlock()
		})
	}
	wg.Wait()

	log.Printf("%d checkouts in %s", *requests, time.Since(start))
	for status, n := range codes {
		log.Printf("%s: %d", status, n)
	}
}

func checkout(client *http.Client, baseURL, token, body string) string {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/orders", bytes.NewBufferString(body))
	if err != nil {
		return err.Error()
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return "transport error"
	}
	defer resp.Body.Close()
	return resp.Status
}
