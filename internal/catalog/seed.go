package catalog

import "context"

// DefaultCategories is the storefront's fixed category set. The slugs are
// the public lookup keys the client links against.
var DefaultCategories = []CategoryInput{
	{Name: "Moda & Estilo", Emoji: "👗", Description: "Roupas, acessórios e tendências", Slug: "moda"},
	{Name: "Casa & Decoração", Emoji: "🛋", Description: "Itens para deixar sua casa linda", Slug: "casa"},
	{Name: "Tecnologia", Emoji: "📱", Description: "Gadgets e eletrônicos incríveis", Slug: "tecnologia"},
	{Name: "Beleza & Cuidados", Emoji: "💄", Description: "Produtos de beleza e autocuidado", Slug: "beleza"},
	{Name: "Promoções Relâmpago", Emoji: "🎯", Description: "Ofertas imperdíveis por tempo limitado", Slug: "promocoes"},
}

// Seed inserts the default categories into an empty store. A store that
// already holds categories (a restarted Postgres-backed process) is left
// untouched.
func Seed(ctx context.Context, s Store) error {
	existing, err := s.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, in := range DefaultCategories {
		if _, err := s.CreateCategory(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
