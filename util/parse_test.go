package util_test

import (
	"code.cloudfoundry.org/test-backend/util"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParsePort", func() {
	It("should parse the port", func() {
		Expect(util.ParsePort("8080")).To(Equal(8080))
	})

	It("should accept the highest port", func() {
		Expect(util.ParsePort("65535")).To(Equal(65535))
	})

	Context("when no port is given", func() {
		It("should default to 3000", func() {
			Expect(util.ParsePort("")).To(Equal(3000))
		})
	})

	Context("when the port is not a number", func() {
		It("should return an error", func() {
			_, err := util.ParsePort("http")

			Expect(err).To(MatchError(ContainSubstring(`port "http" is not a number`)))
		})
	})

	Context("when the port is out of range", func() {
		It("should return an error", func() {
			for _, arg := range []string{"0", "-1", "65536"} {
				_, err := util.ParsePort(arg)

				Expect(err).To(MatchError(ContainSubstring("out of range")), arg)
			}
		})
	})
})
