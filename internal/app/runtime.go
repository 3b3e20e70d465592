package app

import (
	"os"
	"sync"
)

const testModeEnv = "SUPPLIERDESK_TEST_MODE"

var testMode = sync.OnceValue(func() bool {
	return os.Getenv(testModeEnv) == "1"
})

// InTestMode reports whether the binary was started by the test harness and
// should return before binding ports or dialing Redis and the PDF engine.
func InTestMode() bool {
	return testMode()
}
