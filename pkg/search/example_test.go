package search_test

import (
	"fmt"

	"github.com/scottcagno/strsearch/pkg/search"
)

func ExampleSearch() {
	haystack := []byte("ABC ABCDAB ABCDABCDABDE")

	kmp := search.NewKnuthMorrisPratt([]byte("ABCDABD"))
	bm := search.NewBoyerMoore([]byte("ABCDABD"))

	fmt.Println(search.Search(haystack, kmp))
	fmt.Println(search.Search(haystack, bm))
	fmt.Println(search.Search([]byte("nmnn"), search.NewBoyerMooreString("mm")) == search.NotFound)
	// Output:
	// 15
	// 15
	// true
}

func ExampleNew() {
	alg, err := search.ParseAlgorithm("bm")
	if err != nil {
		panic(err)
	}
	s, err := search.New(alg, []rune("語"))
	if err != nil {
		panic(err)
	}
	fmt.Println(s, s.Index([]rune("日本語")))
	// Output:
	// BOYER-MOORE 2
}

func ExampleSearchAll() {
	s := search.NewKnuthMorrisPrattString("ana")
	fmt.Println(search.SearchAll([]byte("bananas"), s))
	// Output:
	// [1 3]
}

func ExampleSearcher_FailureTable() {
	fmt.Println(search.NewKnuthMorrisPrattString("ABCDABD").FailureTable())
	// Output:
	// [0 0 0 0 1 2 0]
}
