// Command scrollstack previews and inspects scroll-synchronized stacked card
// timelines in the terminal.
package main

func main() {
	Execute()
}
