package shop

type Catalog []Product

func (c Catalog) Find(id string) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// DefaultCatalog is the fixed storefront menu.
var DefaultCatalog = Catalog{
	{ID: "tambaqui", Name: "Tambaqui", Price: NewMoney("49.9"), Image: "images/tambaqui.jpeg"},
	{ID: "tilapia", Name: "Tilápia", Price: NewMoney("29.9"), Image: "images/tilapia-preparo-848x477.jpg"},
	{ID: "pescada-amarela", Name: "Pescada Amarela", Price: NewMoney("39.9"), Image: "https://peixariasaojose.wordpress.com/wp-content/uploads/2016/06/pescado.jpg?w=640"},
	{ID: "tucunare", Name: "Tucunaré", Price: NewMoney("19.5"), Image: "https://2.bp.blogspot.com/-edMdnvlVSSM/T1VuSWtrkRI/AAAAAAAACVo/FC63hnAT-ck/s1600/tucunare_assado.jpg"},
	{ID: "corvina", Name: "Corvina", Price: NewMoney("39.9"), Image: "https://feed.continente.pt/media/fkegi5ss/alimentos-corvina.jpg"},
}
