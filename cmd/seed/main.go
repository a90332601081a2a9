package main

import (
	"context"
	"flag"
	"log"

	"shopping-cart/config"
	"shopping-cart/models"
	"shopping-cart/repositories"
	"shopping-cart/utils"
)

var seedProducts = []models.Product{
	{
		Name:        "Notebook Gamer Avançado",
		Price:       7499.90,
		Description: "Notebook de alta performance com placa de vídeo dedicada, ideal para jogos e trabalho pesado.",
		ImageURL:    "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
	},
	{
		Name:        "Mouse Óptico Sem Fio",
		Price:       149.99,
		Description: "Mouse ergonômico com conexão sem fio de alta precisão e bateria de longa duração.",
		ImageURL:    "https://images.unsplash.com/photo-1615663249853-2d42512d242d?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
	},
	{
		Name:        "Teclado Mecânico RGB",
		Price:       450.50,
		Description: "Teclado para gamers com switches mecânicos e iluminação RGB totalmente customizável.",
		ImageURL:    "https://images.unsplash.com/photo-1595225479922-b5941a5e3f50?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
	},
	{
		Name:        "Monitor Ultrawide 34\"",
		Price:       2799.00,
		Description: "Monitor curvo Ultrawide para uma experiência de imersão total em jogos e produtividade.",
		ImageURL:    "https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
	},
	{
		Name:        "Headset Gamer Surround 7.1",
		Price:       399.90,
		Description: "Headset com som surround 7.1, microfone com cancelamento de ruído e conforto para longas sessões.",
		ImageURL:    "https://images.unsplash.com/photo-1585152649444-a623b0331649?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600",
	},
}

func main() {
	destroy := flag.Bool("destroy", false, "wipe all collections instead of seeding")
	flag.Parse()

	config.LoadConfig()
	config.ConnectDB()
	defer config.CloseDB()

	ctx := context.Background()

	if *destroy {
		destroyData(ctx)
		return
	}
	importData(ctx)
}

func importData(ctx context.Context) {
	wipe(ctx)

	hashedPassword, err := utils.HashPassword("adminpassword")
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	users := repositories.NewUserRepository()
	admin := &models.User{
		Name:     "Admin User",
		Email:    "admin@example.com",
		Password: hashedPassword,
		IsAdmin:  true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	products := repositories.NewProductRepository()
	for i := range seedProducts {
		if err := products.Create(ctx, &seedProducts[i]); err != nil {
			log.Fatalf("Failed to create product %q: %v", seedProducts[i].Name, err)
		}
	}

	log.Printf("Seeded %d products and admin user (admin@example.com / adminpassword)", len(seedProducts))
}

func destroyData(ctx context.Context) {
	wipe(ctx)
	log.Println("Products, carts, orders and users removed")
}

func wipe(ctx context.Context) {
	for _, table := range []string{"order_items", "orders", "cart_items", "carts", "products", "users"} {
		if _, err := config.DB.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
}
