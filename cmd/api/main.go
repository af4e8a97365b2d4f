// cmd/api/main.go
package main

import (
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
)

func main() {
	marketingServiceURL, _ := url.Parse(getEnv("MARKETING_SERVICE_URL", "http://localhost:8081"))
	teetimeServiceURL, _ := url.Parse(getEnv("TEETIME_SERVICE_URL", "http://localhost:8082"))
	prestigeServiceURL, _ := url.Parse(getEnv("PRESTIGE_SERVICE_URL", "http://localhost:8083"))
	memberServiceURL, _ := url.Parse(getEnv("MEMBER_SERVICE_URL", "http://localhost:8084"))

	marketingProxy := httputil.NewSingleHostReverseProxy(marketingServiceURL)
	teetimeProxy := httputil.NewSingleHostReverseProxy(teetimeServiceURL)
	prestigeProxy := httputil.NewSingleHostReverseProxy(prestigeServiceURL)
	memberProxy := httputil.NewSingleHostReverseProxy(memberServiceURL)

	http.Handle("/api/v1/marketing/", http.StripPrefix("/api/v1/marketing", marketingProxy))
	http.Handle("/api/v1/teetime/", http.StripPrefix("/api/v1/teetime", teetimeProxy))
	http.Handle("/api/v1/prestige/", http.StripPrefix("/api/v1/prestige", prestigeProxy))
	http.Handle("/api/v1/members/", http.StripPrefix("/api/v1/members", memberProxy))

	port := getEnv("PORT", "8080")
	log.Printf("API Gateway listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
