// MongoGate gateway server.
package main

import (
	"github.com/kart-io/mongogate/internal/gateway"
)

func main() {
	gateway.NewApp("mongogate").Run()
}
