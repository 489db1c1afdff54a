package vibration_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestVibration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Vibration Suite")
}
