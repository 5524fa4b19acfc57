package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/checkout"

var productIDs = []string{"poster_a2", "poster_a1", "mug_classic"}
var countries = []string{"US", "EU", "DE", ""}

type item struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type checkoutBody struct {
	Items   []item `json:"items"`
	Country string `json:"country,omitempty"`
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomBody() checkoutBody {
	items := make([]item, 0, 3)
	for range 1 + rand.Intn(3) {
		id := productIDs[rand.Intn(len(productIDs))]
		if rand.Intn(10) == 0 {
			id = "unknown_id"
		}
		items = append(items, item{ID: id, Quantity: 1 + rand.Intn(5)})
	}
	if rand.Intn(10) == 0 {
		items = nil
	}
	return checkoutBody{
		Items:   items,
		Country: countries[rand.Intn(len(countries))],
	}
}

func doRequest() {
	payload, err := json.Marshal(randomBody())
	if err != nil {
		fmt.Println("marshal error:", err)
		return
	}

	resp, err := http.Post(baseURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Println("request error:", err)
	} else {
		fmt.Println("POST", baseURL, "->", resp.Status)
		resp.Body.Close()
	}
}
