// Command dragnet resolves a person's name into likely usernames, emails,
// phone patterns, and social profiles using open-web existence probes.
package main

func main() {
	Execute()
}
