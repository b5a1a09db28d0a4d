package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Regenerates the hashes embedded in the demo credential allow-list.
func main() {
	passwords := map[string]string{
		"veteran@example.com":  "password",
		"employer@example.com": "employer123",
		"mentor@example.com":   "mentor123",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
