package main

import "github.com/dbsmedya/gosecret/cmd/gosecret/cmd"

func main() {
	cmd.Execute()
}
