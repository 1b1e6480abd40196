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

const baseURL = "http://localhost:8080"

// seeded product ids; run migrations and insert a few products first
var productIDs = []string{
	"6f1f9c3e-1b2d-4e5a-9c0f-1a2b3c4d5e6f",
	"8a7b6c5d-4e3f-2a1b-0c9d-8e7f6a5b4c3d",
}

var sizes = []string{"S", "M", "L", "XL"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doCheckout)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func randomOrder() map[string]any {
	itemsTotal := (rand.Intn(50) + 1) * 1000
	shippingFee := 3000

	// one in five reuses a transaction id to exercise idempotent checkout
	merchantUID := "load-" + randomID(12)
	if rand.Intn(5) == 0 {
		merchantUID = "load-fixed"
	}

	return map[string]any{
		"user_id": "load-user-" + randomID(6),
		"customer": map[string]any{
			"name":  "Load Tester",
			"email": fmt.Sprintf("load%d@example.com", rand.Intn(1000)),
			"phone": fmt.Sprintf("010-%04d-%04d", rand.Intn(9999), rand.Intn(9999)),
		},
		"shipping": map[string]any{
			"recipient": "Load Tester",
			"phone":     "010-0000-0000",
			"address": map[string]any{
				"postal_code":  fmt.Sprintf("%05d", rand.Intn(99999)),
				"main_address": fmt.Sprintf("Street %d", rand.Intn(100)),
			},
		},
		"items": []map[string]any{
			{
				"product_id": productIDs[rand.Intn(len(productIDs))],
				"size":       sizes[rand.Intn(len(sizes))],
				"quantity":   rand.Intn(3) + 1,
			},
		},
		"payment": map[string]any{
			"items_total":  itemsTotal,
			"shipping_fee": shippingFee,
			"final_amount": itemsTotal + shippingFee,
			"method":       "credit_card",
			"merchant_uid": merchantUID,
		},
	}
}

func doCheckout() {
	data, _ := json.Marshal(randomOrder())

	resp, err := http.Post(baseURL+"/orders", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("POST /orders ->", resp.Status)

	if resp.StatusCode != http.StatusCreated {
		return
	}

	var order struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return
	}

	// read back some of the created orders
	if rand.Intn(3) == 0 {
		url := baseURL + "/orders/" + order.ID
		get, err := http.Get(url)
		if err != nil {
			fmt.Println("request failed:", err)
			return
		}
		get.Body.Close()
		fmt.Println("GET", url, "->", get.Status)
	}
}
