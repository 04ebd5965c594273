// Command smoke exercises a running API end to end: create an event, log
// in, book a seat, and confirm the double-booking rejection.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/cookiejar"
	"time"

	"stagedoor/internal/models"
)

func main() {
	var (
		baseURL       string
		adminPassword string
		email         string
		password      string
	)
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "base URL of the API")
	flag.StringVar(&adminPassword, "admin-password", "", "admin password for event creation")
	flag.StringVar(&email, "email", "operator@stagedoor.local", "operator email")
	flag.StringVar(&password, "password", "", "operator password")
	flag.Parse()

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	check("health", expect(client, http.MethodGet, baseURL+"/health", nil, http.StatusOK))
	check("create event", expect(client, http.MethodPost, baseURL+"/api/events", models.CreateEventRequest{
		Name:        "Smoke Test Show",
		Date:        date,
		Time:        "19:30",
		Description: "Automated smoke check",
		Venue:       "Main Hall",
		Password:    adminPassword,
		TotalSeats:  23,
	}, http.StatusCreated, http.StatusConflict))
	check("list seats", expect(client, http.MethodGet, baseURL+"/api/seats?date="+date, nil, http.StatusOK))
	check("login", expect(client, http.MethodPost, baseURL+"/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	}, http.StatusOK))

	book := models.BookSeatRequest{
		SeatID:      "A1",
		Name:        "Smoke Tester",
		Email:       "smoke@example.com",
		Phone:       "9876543210",
		BookingDate: date,
	}
	first := status(client, http.MethodPost, baseURL+"/api/seats/book", book)
	if first != http.StatusOK && first != http.StatusBadRequest {
		log.Fatalf("book seat: unexpected status %d", first)
	}
	check("rebook rejected", expect(client, http.MethodPost, baseURL+"/api/seats/book", book, http.StatusBadRequest))

	log.Println("Smoke check passed")
}

func check(name string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	log.Printf("%s: ok", name)
}

func status(client *http.Client, method, url string, body any) int {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func expect(client *http.Client, method, url string, body any, allowed ...int) error {
	code := status(client, method, url, body)
	for _, want := range allowed {
		if code == want {
			return nil
		}
	}
	return fmt.Errorf("%s %s: unexpected status %d", method, url, code)
}
