package releasefetch_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/reactome/releasefetch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Retrieving release data files", func() {
	var (
		server   *httptest.Server
		requests atomic.Int32
		dataDir  string
	)

	BeforeEach(func() {
		suiteLogger.Reset()
		requests.Store(0)
		dataDir = GinkgoT().TempDir()

		mux := http.NewServeMux()
		mux.HandleFunc("/uniprot/sprot.dat", func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte("ID   1433B_HUMAN"))
		})
		mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusGone)
			_, _ = w.Write([]byte("this release was withdrawn"))
		})
		server = httptest.NewServer(mux)
		DeferCleanup(server.Close)
	})

	newRetriever := func(path string, maxAge time.Duration, options ...releasefetch.Option) (releasefetch.DataRetriever, string) {
		destination := filepath.Join(dataDir, "release", filepath.Base(path))
		options = append([]releasefetch.Option{
			releasefetch.WithName(filepath.Base(path)),
			releasefetch.WithSource(server.URL + path),
			releasefetch.WithDestination(destination),
			releasefetch.WithMaxAge(maxAge),
		}, options...)

		r, err := releasefetch.NewFileRetriever(options...)
		Expect(err).NotTo(HaveOccurred())
		return r, destination
	}

	Context("when the destination does not exist", func() {
		It("downloads it once and then serves the cached copy", func() {
			retriever, destination := newRetriever("/uniprot/sprot.dat", time.Hour)

			By("fetching for the first time")
			Expect(retriever.FetchData(suiteCtx)).To(Succeed())
			Expect(destination).To(BeARegularFile())
			Expect(os.ReadFile(destination)).To(BeEquivalentTo("ID   1433B_HUMAN"))

			By("fetching again while the file is fresh")
			Expect(retriever.FetchData(suiteCtx)).To(Succeed())
			Expect(requests.Load()).To(Equal(int32(1)))
			Expect(suiteLogger.Messages("DEBUG")).To(ContainElement("File is not older than allowed amount so it will not be downloaded"))
		})
	})

	Context("when the cached copy has expired", func() {
		It("downloads it again", func() {
			retriever, destination := newRetriever("/uniprot/sprot.dat", time.Minute,
				releasefetch.WithClock(func() time.Time { return time.Now().Add(time.Hour) }))
			Expect(os.MkdirAll(filepath.Dir(destination), 0o755)).To(Succeed())
			Expect(os.WriteFile(destination, []byte("old release"), 0o644)).To(Succeed())

			Expect(retriever.FetchData(suiteCtx)).To(Succeed())
			Expect(requests.Load()).To(Equal(int32(1)))
			Expect(os.ReadFile(destination)).To(BeEquivalentTo("ID   1433B_HUMAN"))
		})
	})

	Context("when the server answers with an error status", func() {
		It("still writes the body", func() {
			retriever, destination := newRetriever("/gone", time.Hour)

			Expect(retriever.FetchData(suiteCtx)).To(Succeed())
			Expect(os.ReadFile(destination)).To(BeEquivalentTo("this release was withdrawn"))
			Expect(suiteLogger.Messages("ERROR")).To(ContainElement("Response code was 4xx/5xx"))

			entries := suiteLogger.Entries()
			Expect(entries).NotTo(BeEmpty())
			Expect(entries[0].Fields).To(HaveKeyWithValue("retriever", "gone"))
		})
	})

	Context("when the source uses a scheme without a download strategy", func() {
		It("fails before any request is made", func() {
			retriever, _ := newRetriever("/uniprot/sprot.dat", time.Hour)
			retriever.SetDataURL(mustParseURL("gopher://example.org/sprot.dat"))

			err := retriever.FetchData(suiteCtx)
			Expect(err).To(MatchError(releasefetch.ErrUnsupportedScheme))
			Expect(requests.Load()).To(BeZero())
		})
	})
})
