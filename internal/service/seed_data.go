package service

import (
	"github.com/shopspring/decimal"

	"techshop/internal/model"
)

// seedCatalog returns the demo catalog: 32 products across four categories.
func seedCatalog() []model.Product {
	return []model.Product{
		// Laptops & Work
		seedProduct("MacBook Pro 16 M3", "2499.99", "Potencia bruta para profesionales", "Laptops & Work", "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Dell XPS 15", "1899.99", "Elegancia y rendimiento en Windows", "Laptops & Work", "https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Monitor LG 27\" 4K", "449.99", "Claridad absoluta para tu flujo de trabajo", "Laptops & Work", "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Teclado MX Keys S", "109.99", "Escritura fluida y silenciosa", "Laptops & Work", "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Mouse MX Master 3S", "99.99", "Ergonomía y precisión infinita", "Laptops & Work", "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Soporte Laptop Aluminio", "39.99", "Eleva tu visión y mejora tu postura", "Laptops & Work", "https://http2.mlstatic.com/D_NQ_NP_2X_806152-MLV86721098667_062025-F.webp"),
		seedProduct("Hub USB-C 10 en 1", "59.99", "Conectividad total para tu escritorio", "Laptops & Work", "https://m.media-amazon.com/images/I/71ICRvM7FHL._AC_SY450_.jpg"),
		seedProduct("Escritorio Elevable Pro", "599.99", "Trabaja sentado o de pie con estilo", "Laptops & Work", "https://m.media-amazon.com/images/I/61Dm9hwgxWL._AC_SL1500_.jpg"),

		// Mobile Gear
		seedProduct("iPhone 15 Pro Max", "1199.99", "El titanio llega al smartphone", "Mobile Gear", "https://m.media-amazon.com/images/I/31+hYY59fPL._AC_.jpg"),
		seedProduct("Samsung S24 Ultra", "1299.99", "Inteligencia artificial en tu bolsillo", "Mobile Gear", "https://m.media-amazon.com/images/I/41emO6FOHvL._AC_.jpg"),
		seedProduct("iPad Pro M2", "1099.99", "Tu próximo ordenador no es un ordenador", "Mobile Gear", "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Apple Watch Ultra 2", "799.99", "Resistencia extrema para deportistas", "Mobile Gear", "https://m.media-amazon.com/images/I/71SKOyjXoUL._AC_SL1500_.jpg"),
		seedProduct("Power Bank 20000mAh", "49.99", "Energía infinita para tus viajes", "Mobile Gear", "https://m.media-amazon.com/images/I/61bKP+e2KcL._AC_SL1000_.jpg"),
		seedProduct("Funda Cuero MagSafe", "59.99", "Protección premium con estilo", "Mobile Gear", "https://m.media-amazon.com/images/I/815KdHw4t+L._AC_SL1500_.jpg"),
		seedProduct("Gimbal para móvil 6", "159.99", "Estabilización profesional para tus videos", "Mobile Gear", "https://m.media-amazon.com/images/I/71oz-yAKXlL._AC_SL1500_.jpg"),
		seedProduct("Targus Mochila Tech", "89.99", "Transporta tu tecnología con seguridad", "Mobile Gear", "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=800&q=80"),

		// Premium Audio
		seedProduct("Sony WH-1000XM5", "349.99", "La mejor cancelación de ruido del mundo", "Premium Audio", "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?auto=format&fit=crop&w=800&q=80"),
		seedProduct("AirPods Max", "549.99", "Sonido de alta fidelidad absoluto", "Premium Audio", "https://images.unsplash.com/photo-1613040809024-b4ef7ba99bc3?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Bose QuietComfort Ultra", "429.99", "Inmersión total en tu música", "Premium Audio", "https://images.unsplash.com/photo-1546435770-a3e426bf472b?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Sony WF-1000XM5 (In-Ear)", "279.99", "Sonido increíble en formato mini", "Premium Audio", "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Marshall Stanmore III", "379.99", "Estilo icónico y sonido potente", "Premium Audio", "https://m.media-amazon.com/images/I/91QUv-fj6wL._AC_SL1500_.jpg"),
		seedProduct("Sennheiser HD 660S2", "599.99", "Para audiófilos sin compromisos", "Premium Audio", "https://m.media-amazon.com/images/I/81xpWUthgjL._AC_SL1500_.jpg"),
		seedProduct("Soundbar Sonos Beam", "499.99", "Cine en casa compacto e inteligente", "Premium Audio", "https://m.media-amazon.com/images/I/51kIR1gKWYL._AC_SL1500_.jpg"),
		seedProduct("Micrófono Shure SM7B", "399.99", "El estándar de la industria del podcasting", "Premium Audio", "https://images.unsplash.com/photo-1590602847861-f357a9332bbc?auto=format&fit=crop&w=800&q=80"),

		// Ultimate Gaming
		seedProduct("RTX 4090 Founders Edition", "1599.99", "La cúspide del rendimiento gaming", "Ultimate Gaming", "https://images.unsplash.com/photo-1591488320449-011701bb6704?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Razer BlackWidow V4", "229.99", "Inmersión total con RGB", "Ultimate Gaming", "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Logitech G Pro X Superlight", "159.99", "El ratón más ligero de los eSports", "Ultimate Gaming", "https://images.unsplash.com/photo-1660491083562-d91a64d6ea9c?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Monitor Samsung Odyssey G9", "1299.99", "49 pulgadas de pura adrenalina", "Ultimate Gaming", "https://images.unsplash.com/photo-1616763355548-1b606f439f86?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Auriculares SteelSeries Arctis", "349.99", "Sonido envolvente para ganar", "Ultimate Gaming", "https://m.media-amazon.com/images/I/61+WSjGgFzL._AC_SL1500_.jpg"),
		seedProduct("Silla Herman Miller Embody", "1799.99", "Ergonomía extrema para sesiones largas", "Ultimate Gaming", "https://m.media-amazon.com/images/I/81vXeRdDeNL._AC_SY300_SX300_QL70_FMwebp_.jpg"),
		seedProduct("Consola PlayStation 5 Slim", "499.99", "El futuro del gaming ya está aquí", "Ultimate Gaming", "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?auto=format&fit=crop&w=800&q=80"),
		seedProduct("Mando Xbox Elite Series 2", "179.99", "El mando definitivo para ganar", "Ultimate Gaming", "https://m.media-amazon.com/images/I/717XTm0moDL._SL1500_.jpg"),
	}
}

func seedProduct(name, price, description, category, image string) model.Product {
	return model.Product{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: description,
		Category:    category,
		Image:       image,
	}
}
