package catalog

import "storefront/internal/domain"

func laptops() []domain.Product {
	return []domain.Product{
		{
			ID:        "1",
			Brand:     "ASUS",
			Name:      "ROG Strix",
			BasePrice: 2499,
			Images:    []string{"/images/rog-strix/front.webp", "/images/rog-strix/side.webp", "/images/rog-strix/open.webp"},
			Categories: []domain.Category{
				{Name: "processor", Required: true, Options: []domain.Option{
					{ID: "rog-cpu-i9", Name: "Intel Core i9-14900HX", Price: 0, Description: "24 cores, up to 5.8GHz"},
					{ID: "rog-cpu-r9", Name: "AMD Ryzen 9 7945HX", Price: 50, Description: "16 cores, up to 5.4GHz"},
				}},
				{Name: "graphics", Required: true, Options: []domain.Option{
					{ID: "rog-gpu-4070", Name: "RTX 4070 8GB", Price: 0, Description: "140W TGP"},
					{ID: "rog-gpu-4080", Name: "RTX 4080 12GB", Price: 400, Description: "175W TGP"},
					{ID: "rog-gpu-4090", Name: "RTX 4090 16GB", Price: 900, Description: "175W TGP"},
				}},
				{Name: "ram", Required: true, Options: []domain.Option{
					{ID: "rog-ram-16", Name: "16GB DDR5", Price: 0, Description: "5600MHz"},
					{ID: "rog-ram-32", Name: "32GB DDR5", Price: 100, Description: "5600MHz"},
					{ID: "rog-ram-64", Name: "64GB DDR5", Price: 200, Description: "6400MHz"},
				}},
				{Name: "storage", Required: true, Options: []domain.Option{
					{ID: "rog-ssd-1", Name: "1TB NVMe SSD", Price: 0, Description: "PCIe 4.0"},
					{ID: "rog-ssd-2", Name: "2TB NVMe SSD", Price: 150, Description: "PCIe 4.0"},
					{ID: "rog-ssd-4", Name: "4TB NVMe SSD (RAID 0)", Price: 450, Description: "2x 2TB PCIe 4.0"},
				}},
				{Name: "display", Required: false, Options: []domain.Option{
					{ID: "rog-disp-qhd", Name: "16\" QHD+ 240Hz", Price: 0, Description: "Mini LED, 1100 nits"},
					{ID: "rog-disp-uhd", Name: "16\" UHD 120Hz", Price: 250, Description: "100% DCI-P3"},
				}},
				{Name: "warranty", Required: false, Options: []domain.Option{
					{ID: "rog-war-1", Name: "1 year standard", Price: 0, Description: "Carry-in service"},
					{ID: "rog-war-3", Name: "3 year premium", Price: 199, Description: "Accidental damage included"},
				}},
			},
		},
		{
			ID:        "2",
			Brand:     "Razer",
			Name:      "Blade 16",
			BasePrice: 2999,
			Images:    []string{"/images/blade-16/front.webp", "/images/blade-16/keyboard.webp"},
			Categories: []domain.Category{
				{Name: "graphics", Required: true, Options: []domain.Option{
					{ID: "blade-gpu-4070", Name: "RTX 4070 8GB", Price: 0, Description: "115W TGP"},
					{ID: "blade-gpu-4090", Name: "RTX 4090 16GB", Price: 1200, Description: "175W TGP"},
				}},
				{Name: "ram", Required: true, Options: []domain.Option{
					{ID: "blade-ram-16", Name: "16GB DDR5", Price: 0, Description: "5600MHz"},
					{ID: "blade-ram-32", Name: "32GB DDR5", Price: 200, Description: "5600MHz"},
				}},
				{Name: "storage", Required: true, Options: []domain.Option{
					{ID: "blade-ssd-1", Name: "1TB NVMe SSD", Price: 0, Description: "PCIe 4.0"},
					{ID: "blade-ssd-2", Name: "2TB NVMe SSD", Price: 200, Description: "PCIe 4.0"},
				}},
				{Name: "display", Required: true, Options: []domain.Option{
					{ID: "blade-disp-oled", Name: "16\" QHD+ OLED 240Hz", Price: 0, Description: "0.2ms response"},
					{ID: "blade-disp-dual", Name: "16\" Dual-mode Mini LED", Price: 300, Description: "UHD+ 120Hz / FHD+ 240Hz"},
				}},
			},
		},
		{
			ID:        "3",
			Brand:     "MSI",
			Name:      "Titan 18 HX",
			BasePrice: 4199,
			Images:    []string{"/images/titan-18/front.webp", "/images/titan-18/rear.webp"},
			Categories: []domain.Category{
				{Name: "ram", Required: true, Options: []domain.Option{
					{ID: "titan-ram-64", Name: "64GB DDR5", Price: 0, Description: "5600MHz"},
					{ID: "titan-ram-128", Name: "128GB DDR5", Price: 400, Description: "5600MHz"},
				}},
				{Name: "storage", Required: true, Options: []domain.Option{
					{ID: "titan-ssd-2", Name: "2TB NVMe SSD", Price: 0, Description: "PCIe 5.0"},
					{ID: "titan-ssd-4", Name: "4TB NVMe SSD", Price: 350, Description: "PCIe 5.0"},
				}},
				{Name: "warranty", Required: false, Options: []domain.Option{
					{ID: "titan-war-2", Name: "2 year standard", Price: 0, Description: "Carry-in service"},
					{ID: "titan-war-4", Name: "4 year premium", Price: 299, Description: "On-site service"},
				}},
			},
		},
		{
			ID:        "4",
			Brand:     "Alienware",
			Name:      "m18 R2",
			BasePrice: 2899,
			Images:    []string{"/images/m18/front.webp", "/images/m18/lighting.webp"},
			Categories: []domain.Category{
				{Name: "processor", Required: true, Options: []domain.Option{
					{ID: "m18-cpu-i7", Name: "Intel Core i7-14700HX", Price: 0, Description: "20 cores, up to 5.5GHz"},
					{ID: "m18-cpu-i9", Name: "Intel Core i9-14900HX", Price: 250, Description: "24 cores, up to 5.8GHz"},
				}},
				{Name: "graphics", Required: true, Options: []domain.Option{
					{ID: "m18-gpu-4070", Name: "RTX 4070 8GB", Price: 0, Description: "140W TGP"},
					{ID: "m18-gpu-4080", Name: "RTX 4080 12GB", Price: 500, Description: "175W TGP"},
				}},
				{Name: "keyboard", Required: false, Options: []domain.Option{
					{ID: "m18-kb-std", Name: "Per-key RGB", Price: 0, Description: "AlienFX lighting"},
					{ID: "m18-kb-cherry", Name: "Cherry MX ultra low-profile", Price: 100, Description: "Mechanical switches"},
				}},
			},
		},
		{
			ID:        "5",
			Brand:     "Lenovo",
			Name:      "Legion 9i",
			BasePrice: 3399,
			Images:    []string{"/images/legion-9i/front.webp"},
			Categories: []domain.Category{
				{Name: "graphics", Required: true, Options: []domain.Option{
					{ID: "legion-gpu-4080", Name: "RTX 4080 12GB", Price: 0, Description: "175W TGP, liquid cooled"},
					{ID: "legion-gpu-4090", Name: "RTX 4090 16GB", Price: 600, Description: "175W TGP, liquid cooled"},
				}},
				{Name: "ram", Required: true, Options: []domain.Option{
					{ID: "legion-ram-32", Name: "32GB DDR5", Price: 0, Description: "6400MHz"},
					{ID: "legion-ram-64", Name: "64GB DDR5", Price: 250, Description: "6400MHz"},
				}},
				{Name: "storage", Required: true, Options: []domain.Option{
					{ID: "legion-ssd-2", Name: "2TB NVMe SSD", Price: 0, Description: "PCIe 4.0 RAID 0"},
				}},
			},
		},
	}
}
