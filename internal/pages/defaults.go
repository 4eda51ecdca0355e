package pages

import (
	"github.com/goliatone/socialsync/internal/content"
	"github.com/goliatone/socialsync/internal/i18n"
	"github.com/goliatone/socialsync/internal/identity"
)

const (
	ServiceSocialMedia    = "social-media"
	ServicePaidTraffic    = "paid-traffic"
	ServiceWebDevelopment = "web-development"
	ServicePhotography    = "photography"
)

// ServiceOrder is the fixed section order of the services page.
var ServiceOrder = []string{ServiceSocialMedia, ServicePaidTraffic, ServiceWebDevelopment, ServicePhotography}

// DefaultServices returns the built-in services, titled in the visitor's language.
func DefaultServices(tr i18n.Translations) []content.Service {
	return []content.Service{
		defaultService(ServiceSocialMedia, IconShare, tr.Services.SocialMedia, []string{
			"Estratégia de conteúdo personalizada",
			"Calendário editorial e planejamento",
			"Criação e produção de conteúdo",
			"Análise de métricas e resultados",
		}),
		defaultService(ServicePaidTraffic, IconLineChart, tr.Services.PaidTraffic, []string{
			"Google Ads e Meta Ads",
			"Remarketing e campanhas de conversão",
			"Otimização e análise de performance",
			"Relatórios de ROI e resultados",
		}),
		defaultService(ServiceWebDevelopment, IconCode, tr.Services.WebDevelopment, []string{
			"Sites institucionais e landing pages",
			"E-commerce e soluções de vendas online",
			"Aplicativos web e soluções personalizadas",
			"Manutenção e otimização de sites existentes",
		}),
		defaultService(ServicePhotography, IconCamera, tr.Services.Photography, []string{
			"Fotografia de produtos",
			"Fotografia institucional e corporativa",
			"Produção de imagens para redes sociais",
			"Direção de arte e produção visual",
		}),
	}
}

func defaultService(slug, icon string, text i18n.ServiceCopy, features []string) content.Service {
	return content.Service{
		ID:          identity.DocumentID("service", slug),
		Title:       text.Title,
		Slug:        content.Slug{Current: slug},
		Description: text.Description,
		Icon:        icon,
		Features:    features,
	}
}

// DefaultCategories returns the categories of the built-in projects.
func DefaultCategories() []content.Category {
	return []content.Category{
		defaultCategory("social-media", "Social Media"),
		defaultCategory("web-development", "Web Development"),
		defaultCategory("photography", "Photography"),
	}
}

func defaultCategory(slug, name string) content.Category {
	return content.Category{
		ID:   identity.DocumentID("category", slug),
		Name: name,
		Slug: content.Slug{Current: slug},
	}
}

// DefaultProjects returns the built-in portfolio.
func DefaultProjects() []content.Project {
	categories := DefaultCategories()
	return []content.Project{
		defaultProject("beautybrand-social-campaign", "BeautyBrand Social Campaign", categories[0],
			"A complete social media campaign that increased engagement by 200%."),
		defaultProject("techcompany-website-redesign", "TechCompany Website Redesign", categories[1],
			"Complete redesign of the corporate website, focusing on user experience and conversion."),
		defaultProject("foodbrand-product-photography", "FoodBrand Product Photography", categories[2],
			"Product photo session for e-commerce, with art direction aligned with brand identity."),
	}
}

func defaultProject(slug, title string, category content.Category, description string) content.Project {
	return content.Project{
		ID:          identity.DocumentID("project", slug),
		Title:       title,
		Slug:        content.Slug{Current: slug},
		Category:    &category,
		Description: description,
	}
}

// DefaultTestimonials returns the built-in client quotes.
func DefaultTestimonials() []content.Testimonial {
	return []content.Testimonial{
		defaultTestimonial("ana-silva", "Ana Silva", "Marketing Director", "TechCorp",
			"A parceria com a Social Sync transformou nossa presença nas redes sociais. O engajamento aumentou significativamente e as conversões triplicaram em apenas três meses."),
		defaultTestimonial("carlos-mendes", "Carlos Mendes", "CEO", "Fashion Brand",
			"As fotos produzidas pela equipe da Social Sync elevaram o padrão visual da nossa marca. A qualidade é excepcional e o retorno sobre o investimento foi imediato."),
		defaultTestimonial("juliana-costa", "Juliana Costa", "Owner", "Local Restaurant",
			"Nosso novo site desenvolvido pela Social Sync não só ficou lindo como também melhorou significativamente nossas vendas online. O processo foi simples e profissional."),
	}
}

func defaultTestimonial(slug, name, position, company, quote string) content.Testimonial {
	return content.Testimonial{
		ID:       identity.DocumentID("testimonial", slug),
		Name:     name,
		Position: position,
		Company:  company,
		Content:  quote,
	}
}
