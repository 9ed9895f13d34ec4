package store

import "fmt"

// seedCatalog is the assortment the shop starts with after every restart.
var seedCatalog = []Product{
	{Name: `Кастрюля "Шеф-Повар" 20л`, Category: "Кастрюли", Description: "Нержавеющая сталь, тройное дно", Price: 5990, Quantity: 15, Rating: 4.8, Image: "/assets/chef.jpg"},
	{Name: "Кастрюля эмалированная 5л", Category: "Кастрюли", Description: "Классическая эмалированная кастрюля", Price: 1200, Quantity: 30, Rating: 4.2, Image: "/assets/"},
	{Name: "Казан чугунный 12л", Category: "Казаны", Description: "Настоящий чугун для плова", Price: 3500, Quantity: 8, Rating: 4.9, Image: "/assets/"},
	{Name: "Сотейник антипригарный", Category: "Сотейники", Description: "Антипригарное покрытие, 24см", Price: 2100, Quantity: 20, Rating: 4.5, Image: "/assets/"},
	{Name: "Кастрюля нержавеющая 3л", Category: "Кастрюли", Description: "Компактная для ежедневного использования", Price: 1800, Quantity: 25, Rating: 4.3, Image: "/assets/"},
	{Name: "Сковорода гриль 28см", Category: "Сковороды", Description: "Чугунная сковорода-гриль", Price: 2500, Quantity: 12, Rating: 4.6, Image: "/assets/"},
	{Name: "Ковш для молока 1.5л", Category: "Ковши", Description: "Идеален для каш и соусов", Price: 890, Quantity: 40, Rating: 4.1, Image: "/assets/"},
	{Name: "Утятница керамическая", Category: "Формы", Description: "Керамика для запекания в духовке", Price: 3200, Quantity: 6, Rating: 4.7, Image: "/assets/utyatnica.jpg"},
	{Name: "Пароварка бамбуковая", Category: "Аксессуары", Description: "Экологичная пароварка", Price: 1500, Quantity: 10, Rating: 4.4, Image: "/assets/bamboo.jpg"},
	{Name: "Турка медная 500мл", Category: "Кофе", Description: "Для приготовления настоящего кофе", Price: 1100, Quantity: 18, Rating: 4.8, Image: "/assets/turk.jpg"},
	{Name: "Горшок для запекания", Category: "Формы", Description: "Керамический горшок с крышкой", Price: 750, Quantity: 35, Rating: 4.0, Image: "/assets/gorshok.jpg"},
	{Name: "Вок сковорода 32см", Category: "Сковороды", Description: "Для жарки на сильном огне", Price: 2800, Quantity: 9, Rating: 4.5, Image: "/assets/wok.jpg"},
}

// SeedProducts returns the startup catalog with freshly generated, distinct IDs.
func SeedProducts(gen IDGenerator) ([]Product, error) {
	products := make([]Product, len(seedCatalog))
	taken := make(map[string]struct{}, len(seedCatalog))
	for i, p := range seedCatalog {
		id, err := seedID(gen, taken)
		if err != nil {
			return nil, err
		}
		p.ID = id
		products[i] = p
	}
	return products, nil
}

func seedID(gen IDGenerator, taken map[string]struct{}) (string, error) {
	for range maxIDAttempts {
		id, err := gen()
		if err != nil {
			return "", fmt.Errorf("failed to generate seed id: %w", err)
		}
		if _, dup := taken[id]; !dup && id != "" {
			taken[id] = struct{}{}
			return id, nil
		}
	}
	return "", fmt.Errorf("no free seed id after %d attempts", maxIDAttempts)
}
